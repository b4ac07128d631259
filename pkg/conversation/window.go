package conversation

import (
	"floatchat-be/internal/entity"
	"floatchat-be/pkg/llm"
)

// DefaultWindowSize is also the ceiling: the prompt never carries more than
// this many exchanges.
const DefaultWindowSize = 5

// ContextWindow returns the last size exchanges as alternating user/assistant
// messages in chronological order. A size outside 1..DefaultWindowSize falls
// back to DefaultWindowSize.
func ContextWindow(exchanges []entity.Exchange, size int) []llm.Message {
	if size <= 0 || size > DefaultWindowSize {
		size = DefaultWindowSize
	}
	if len(exchanges) > size {
		exchanges = exchanges[len(exchanges)-size:]
	}

	messages := make([]llm.Message, 0, len(exchanges)*2)
	for _, ex := range exchanges {
		messages = append(messages,
			llm.Message{Role: "user", Content: ex.UserMessage},
			llm.Message{Role: "assistant", Content: ex.AIMessage},
		)
	}
	return messages
}
