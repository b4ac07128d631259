package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "chat.session_created").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	ChatSessionCreated   = "chat.session_created"
	ChatExchangeAppended = "chat.exchange_appended"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurredAt"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewChatSessionCreated(chatId, userId, title string) BaseEvent {
	return BaseEvent{
		Type: ChatSessionCreated,
		Data: map[string]interface{}{
			"chat_id": chatId,
			"user_id": userId,
			"title":   title,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func NewChatExchangeAppended(chatId, userId string, messageCount int, plotCount int) BaseEvent {
	return BaseEvent{
		Type: ChatExchangeAppended,
		Data: map[string]interface{}{
			"chat_id":       chatId,
			"user_id":       userId,
			"message_count": messageCount,
			"plot_count":    plotCount,
		},
		OccurredAt: time.Now().UTC(),
	}
}
