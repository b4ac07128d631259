package floatchat

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

// FloatChatProvider talks to the FloatChat agent service (the Python
// FastAPI app that owns the model and the Argo tools).
type FloatChatProvider struct {
	client *resty.Client
}

var _ llm.LLMProvider = &FloatChatProvider{}

func NewFloatChatProvider(baseURL string, timeout time.Duration) *FloatChatProvider {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")

	return &FloatChatProvider{client: client}
}

type agentRequest struct {
	Message string `json:"message"`
	Mode    *int   `json:"mode,omitempty"`
}

type agentResponse struct {
	Reply *string         `json:"reply"`
	Plots json.RawMessage `json:"plots,omitempty"`
}

func (p *FloatChatProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (*llm.Reply, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(agentRequest{Message: prompt, Mode: options.Mode}).
		Post("/chat/")
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", apperror.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrUpstream, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: agent returned status %d: %s", apperror.ErrUpstream, resp.StatusCode(), truncate(resp.String(), 200))
	}

	var out agentResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: malformed agent response: %v", apperror.ErrUpstream, err)
	}
	if out.Reply == nil {
		return nil, fmt.Errorf("%w: agent response has no reply field", apperror.ErrUpstream)
	}

	charts, rejected := llm.DecodeCharts(out.Plots)
	return &llm.Reply{Text: *out.Reply, Charts: charts, Rejected: rejected}, nil
}

// Chat flattens the history into one prompt; the agent endpoint is single-turn.
func (p *FloatChatProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (*llm.Reply, error) {
	var sb strings.Builder
	for i, msg := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch msg.Role {
		case "assistant", "model":
			sb.WriteString("AI: ")
		case "system":
			sb.WriteString("System: ")
		default:
			sb.WriteString("User: ")
		}
		sb.WriteString(msg.Content)
	}
	return p.Generate(ctx, sb.String(), opts...)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
