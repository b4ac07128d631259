package contract

import (
	"context"

	"floatchat-be/internal/entity"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	// FindOne returns (nil, nil) when no session with that id belongs to userId.
	FindOne(ctx context.Context, id string, userId string) (*entity.ChatSession, error)
	FindAllSummaries(ctx context.Context, userId string) ([]*entity.ChatSessionSummary, error)
	// AppendExchange pushes one exchange if the stored version still equals
	// expectedVersion and returns the session as persisted after the push.
	AppendExchange(ctx context.Context, id string, expectedVersion int64, exchange entity.Exchange) (*entity.ChatSession, error)
	Ping(ctx context.Context) error
}
