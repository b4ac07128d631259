package contract

import (
	"context"
	"time"

	"floatchat-be/internal/entity"
)

type ProfileRepository interface {
	FindShallowestByDate(ctx context.Context, date time.Time) ([]*entity.Profile, error)
	Ping(ctx context.Context) error
}

// ProfileCache stores query results per calendar day.
type ProfileCache interface {
	Get(ctx context.Context, key string) ([]*entity.Profile, bool)
	Set(ctx context.Context, key string, profiles []*entity.Profile)
}
