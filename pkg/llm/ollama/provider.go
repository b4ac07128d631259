package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"floatchat-be/internal/pkg/apperror"
	"floatchat-be/pkg/llm"

	"github.com/go-resty/resty/v2"
)

// OllamaProvider answers with plain text from a local Ollama model.
// It never produces charts, so replies are always ReplyText.
type OllamaProvider struct {
	ModelName   string
	Temperature float64
	client      *resty.Client
}

var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string, timeout time.Duration) *OllamaProvider {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")

	return &OllamaProvider{
		ModelName:   modelName,
		Temperature: 0.7,
		client:      client,
	}
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (*llm.Reply, error) {
	messages := make([]ollamaMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = ollamaMessage{Role: role, Content: msg.Content}
	}

	payload := ollamaChatRequest{
		Model:    o.ModelName,
		Messages: messages,
		Stream:   false,
		Options:  &ollamaOptions{Temperature: o.Temperature},
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/api/chat")
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, fmt.Errorf("%w: ollama: %v", apperror.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%w: ollama request failed: %v", apperror.ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: ollama status %d: %s", apperror.ErrUpstream, resp.StatusCode(), resp.String())
	}

	var out ollamaChatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: ollama unmarshal response: %v", apperror.ErrUpstream, err)
	}

	return &llm.Reply{Text: out.Message.Content}, nil
}

func (o *OllamaProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (*llm.Reply, error) {
	return o.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
