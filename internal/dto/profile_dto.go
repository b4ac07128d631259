package dto

import "time"

type ProfileResponse struct {
	ProfileId    int64     `json:"profile_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Datetime     time.Time `json:"datetime"`
	Pressure     float64   `json:"pressure"`
	Temperature  float64   `json:"temperature"`
	Salinity     float64   `json:"salinity"`
	ProjectName  string    `json:"project_name"`
	PlatformType string    `json:"platform_type"`
}

type HealthResponse struct {
	Mongo    string `json:"mongo"`
	Postgres string `json:"postgres"`
}
