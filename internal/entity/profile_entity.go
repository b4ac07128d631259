package entity

import "time"

// Profile is one Argo float observation, populated by an external ingestion job.
type Profile struct {
	ProfileId    int64
	Latitude     float64
	Longitude    float64
	Datetime     time.Time
	Pressure     float64
	Temperature  float64
	Salinity     float64
	ProjectName  string
	PlatformType string
}
