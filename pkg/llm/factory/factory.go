package factory

import (
	"fmt"

	"floatchat-be/internal/config"
	"floatchat-be/pkg/llm"
	"floatchat-be/pkg/llm/floatchat"
	"floatchat-be/pkg/llm/ollama"
)

func NewLLMProvider(cfg config.AIConfig) (llm.LLMProvider, error) {
	switch cfg.LLMProvider {
	case "", "floatchat":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("API_BASE_URL is required for the floatchat provider")
		}
		return floatchat.NewFloatChatProvider(cfg.BaseURL, cfg.Timeout), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.OllamaModel, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
