package mapper

import (
	"floatchat-be/internal/entity"
	"floatchat-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.ArgoProfile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		ProfileId:    p.ProfileId,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Datetime:     p.Datetime,
		Pressure:     p.Pressure,
		Temperature:  p.Temperature,
		Salinity:     p.Salinity,
		ProjectName:  p.ProjectName,
		PlatformType: p.PlatformType,
	}
}

func (m *ProfileMapper) ToEntities(list []*model.ArgoProfile) []*entity.Profile {
	out := make([]*entity.Profile, 0, len(list))
	for _, p := range list {
		out = append(out, m.ToEntity(p))
	}
	return out
}
