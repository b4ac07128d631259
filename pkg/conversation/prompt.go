package conversation

import (
	"strings"

	"floatchat-be/pkg/llm"
)

// PromptBuilder renders the context window and the new query as the single
// prompt the agent receives.
type PromptBuilder struct {
	history []llm.Message
	query   string
}

func NewPromptBuilder(history []llm.Message, query string) *PromptBuilder {
	return &PromptBuilder{history: history, query: query}
}

func (b *PromptBuilder) Build() string {
	var prompt strings.Builder

	b.writeContext(&prompt)
	b.writeQuery(&prompt)

	return prompt.String()
}

func (b *PromptBuilder) writeContext(prompt *strings.Builder) {
	if len(b.history) == 0 {
		return
	}

	prompt.WriteString("Previous conversation:\n")
	for _, msg := range b.history {
		if msg.Role == "assistant" {
			prompt.WriteString("AI: ")
		} else {
			prompt.WriteString("User: ")
		}
		prompt.WriteString(msg.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("\n")
}

func (b *PromptBuilder) writeQuery(prompt *strings.Builder) {
	if len(b.history) == 0 {
		prompt.WriteString(b.query)
		return
	}
	prompt.WriteString("User: ")
	prompt.WriteString(b.query)
}
