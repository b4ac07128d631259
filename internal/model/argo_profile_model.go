package model

import "time"

// ArgoProfile maps one row of argo_profiles. The table is owned by the
// ingestion pipeline; this service only reads it.
type ArgoProfile struct {
	ProfileId    int64     `gorm:"column:profile_id;index:idx_argo_profiles_profile_pressure,priority:1"`
	Latitude     float64   `gorm:"column:latitude"`
	Longitude    float64   `gorm:"column:longitude"`
	Datetime     time.Time `gorm:"column:datetime;index"`
	Pressure     float64   `gorm:"column:pressure;index:idx_argo_profiles_profile_pressure,priority:2"`
	Temperature  float64   `gorm:"column:temperature"`
	Salinity     float64   `gorm:"column:salinity"`
	ProjectName  string    `gorm:"column:project_name"`
	PlatformType string    `gorm:"column:platform_type"`
}

func (ArgoProfile) TableName() string {
	return "argo_profiles"
}
