package nats

import (
	"context"
	"os"
	"testing"
	"time"

	"floatchat-be/internal/pkg/logger"
	"floatchat-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "floatchat.events.chat.session_created", Subject(events.ChatSessionCreated))
}

func TestPublishReachesCoreSubscribers(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set")
	}

	pub, err := NewPublisher(url, logger.NewNopLogger())
	require.NoError(t, err)
	defer pub.Close()

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	defer nc.Close()

	sub, err := nc.SubscribeSync(Subject(events.ChatExchangeAppended))
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, pub.Publish(ctx, events.NewChatExchangeAppended("abc", "u1", 1, 0)))

	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)
	assert.Contains(t, string(msg.Data), `"chat.exchange_appended"`)
}
