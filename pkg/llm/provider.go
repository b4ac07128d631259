package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option sets per-call parameters.
type Option func(*Options)

type Options struct {
	Mode *int // FloatChat agent mode, forwarded untouched
}

func WithMode(mode int) Option {
	return func(o *Options) {
		o.Mode = &mode
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (*Reply, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (*Reply, error)
}
