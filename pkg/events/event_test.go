package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatEventConstructors(t *testing.T) {
	created := NewChatSessionCreated("65f0c0ffee", "user_1", "Salinity near Goa")
	assert.Equal(t, ChatSessionCreated, created.EventType())
	assert.Equal(t, "user_1", created.Payload()["user_id"])
	assert.False(t, created.Timestamp().IsZero())

	appended := NewChatExchangeAppended("65f0c0ffee", "user_1", 3, 1)
	assert.Equal(t, ChatExchangeAppended, appended.EventType())
	assert.Equal(t, 3, appended.Payload()["message_count"])
}
