package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"floatchat-be/internal/pkg/logger"
	"floatchat-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingForwarder struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (f *recordingForwarder) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

func (f *recordingForwarder) received() []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]events.Event(nil), f.events...)
}

func newTestPubSub(t *testing.T) *gochannel.GoChannel {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })
	return pubSub
}

func TestEventsFlowFromPublisherToForwarder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := newTestPubSub(t)
	forwarder := &recordingForwarder{}
	consumer := NewConsumerService(pubSub, "chat_events", forwarder, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("chat_events", pubSub)
	require.NoError(t, publisher.Publish(ctx, events.NewChatSessionCreated("abc123", "user_1", "Hello")))

	assert.Eventually(t, func() bool { return len(forwarder.received()) == 1 }, 2*time.Second, 10*time.Millisecond)
	got := forwarder.received()[0]
	assert.Equal(t, events.ChatSessionCreated, got.EventType())
	assert.Equal(t, "abc123", got.Payload()["chat_id"])
}

func TestConsumerAcksWhenForwardFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := newTestPubSub(t)
	forwarder := &recordingForwarder{err: errors.New("nats down")}
	require.NoError(t, NewConsumerService(pubSub, "chat_events", forwarder, logger.NewNopLogger()).Consume(ctx))

	publisher := NewPublisherService("chat_events", pubSub)
	require.NoError(t, publisher.Publish(ctx, events.NewChatExchangeAppended("abc123", "user_1", 1, 0)))
	require.NoError(t, publisher.Publish(ctx, events.NewChatExchangeAppended("abc123", "user_1", 2, 0)))

	// a Nack would redeliver the first message forever and starve the second
	assert.Eventually(t, func() bool { return len(forwarder.received()) == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestConsumerSkipsUndecodablePayload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := newTestPubSub(t)
	forwarder := &recordingForwarder{}
	require.NoError(t, NewConsumerService(pubSub, "chat_events", forwarder, logger.NewNopLogger()).Consume(ctx))

	require.NoError(t, pubSub.Publish("chat_events", message.NewMessage(watermill.NewUUID(), []byte("not json"))))
	require.NoError(t, NewPublisherService("chat_events", pubSub).Publish(ctx, events.NewChatSessionCreated("x", "u", "t")))

	assert.Eventually(t, func() bool { return len(forwarder.received()) == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestConsumerWithoutForwarder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := newTestPubSub(t)
	require.NoError(t, NewConsumerService(pubSub, "chat_events", nil, logger.NewNopLogger()).Consume(ctx))
	assert.NoError(t, NewPublisherService("chat_events", pubSub).Publish(ctx, events.NewChatSessionCreated("x", "u", "t")))
}
