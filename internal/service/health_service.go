package service

import (
	"context"
	"time"

	"floatchat-be/internal/dto"
	"floatchat-be/internal/repository/contract"
)

const (
	healthUp   = "up"
	healthDown = "down"
)

type IHealthService interface {
	// Check reports each store and whether all of them answered.
	Check(ctx context.Context) (*dto.HealthResponse, bool)
}

type healthService struct {
	chatRepo    contract.ChatSessionRepository
	profileRepo contract.ProfileRepository
	timeout     time.Duration
}

func NewHealthService(chatRepo contract.ChatSessionRepository, profileRepo contract.ProfileRepository) IHealthService {
	return &healthService{
		chatRepo:    chatRepo,
		profileRepo: profileRepo,
		timeout:     2 * time.Second,
	}
}

func (hs *healthService) Check(ctx context.Context) (*dto.HealthResponse, bool) {
	ctx, cancel := context.WithTimeout(ctx, hs.timeout)
	defer cancel()

	res := &dto.HealthResponse{
		Mongo:    pingStatus(hs.chatRepo.Ping(ctx)),
		Postgres: pingStatus(hs.profileRepo.Ping(ctx)),
	}
	return res, res.Mongo == healthUp && res.Postgres == healthUp
}

func pingStatus(err error) string {
	if err != nil {
		return healthDown
	}
	return healthUp
}
