package service

import (
	"context"
	"fmt"
	"time"

	"floatchat-be/internal/dto"
	"floatchat-be/internal/entity"
	"floatchat-be/internal/pkg/apperror"
	"floatchat-be/internal/pkg/logger"
	"floatchat-be/internal/repository/contract"
)

type IProfileService interface {
	GetProfilesForDate(ctx context.Context, date string) ([]*dto.ProfileResponse, error)
}

type profileService struct {
	profileRepo contract.ProfileRepository
	cache       contract.ProfileCache
	logger      logger.ILogger
}

// NewProfileService reads through cache, which may be nil to always hit Postgres.
func NewProfileService(profileRepo contract.ProfileRepository, cache contract.ProfileCache, log logger.ILogger) IProfileService {
	return &profileService{
		profileRepo: profileRepo,
		cache:       cache,
		logger:      log,
	}
}

func profileCacheKey(day time.Time) string {
	return "profiles:" + day.Format(time.DateOnly)
}

func (ps *profileService) GetProfilesForDate(ctx context.Context, date string) ([]*dto.ProfileResponse, error) {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", apperror.ErrValidation, date)
	}

	key := profileCacheKey(day)
	if ps.cache != nil {
		if profiles, ok := ps.cache.Get(ctx, key); ok {
			return toProfileResponses(profiles), nil
		}
	}

	profiles, err := ps.profileRepo.FindShallowestByDate(ctx, day)
	if err != nil {
		ps.logger.Error("PROFILE", "Profile query failed", map[string]interface{}{
			"date":  date,
			"error": err.Error(),
		})
		return nil, err
	}

	if ps.cache != nil {
		ps.cache.Set(ctx, key, profiles)
	}

	ps.logger.Debug("PROFILE", "Profiles loaded", map[string]interface{}{
		"date":  date,
		"count": len(profiles),
	})

	return toProfileResponses(profiles), nil
}

func toProfileResponses(profiles []*entity.Profile) []*dto.ProfileResponse {
	out := make([]*dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, &dto.ProfileResponse{
			ProfileId:    p.ProfileId,
			Latitude:     p.Latitude,
			Longitude:    p.Longitude,
			Datetime:     p.Datetime,
			Pressure:     p.Pressure,
			Temperature:  p.Temperature,
			Salinity:     p.Salinity,
			ProjectName:  p.ProjectName,
			PlatformType: p.PlatformType,
		})
	}
	return out
}
