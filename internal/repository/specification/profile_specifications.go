package specification

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ObservedOn matches rows whose datetime falls on the given calendar day.
// The day is sent as text so the session time zone cannot shift it.
type ObservedOn struct {
	Date time.Time
}

func (s ObservedOn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("DATE(datetime) = ?::date", s.Date.Format(time.DateOnly))
}

// ShallowestPerProfile keeps the first row per profile_id. Postgres requires
// the DISTINCT ON key to lead the ORDER BY, so this spec owns both.
type ShallowestPerProfile struct {
	Columns []string
}

func (s ShallowestPerProfile) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Select("DISTINCT ON (profile_id) " + strings.Join(s.Columns, ", ")).
		Order("profile_id").
		Order("pressure ASC")
}

