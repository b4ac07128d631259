package service

import (
	"context"
	"encoding/json"
	"time"

	"floatchat-be/internal/pkg/logger"
	"floatchat-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventForwarder is the outbound bus; *nats.Publisher satisfies it.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	forwarder EventForwarder
	logger    logger.ILogger
}

// NewConsumerService drains chat events from the in-process bus. forwarder
// may be nil when NATS is not configured; events are then only logged.
func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	forwarder EventForwarder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		forwarder: forwarder,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("EVENTS", "Dropping undecodable event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Ack: redelivery cannot fix a bad payload
		msg.Ack()
		return
	}

	cs.logger.Info("EVENTS", event.Type, event.Data)

	if cs.forwarder != nil {
		fwdCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := cs.forwarder.Publish(fwdCtx, event)
		cancel()
		if err != nil {
			// chat history is already persisted; a lost fan-out is logged, not retried
			cs.logger.Warn("EVENTS", "Failed to forward event to NATS", map[string]interface{}{
				"event_type": event.Type,
				"message_id": msg.UUID,
				"error":      err.Error(),
			})
		}
	}

	msg.Ack()
}
