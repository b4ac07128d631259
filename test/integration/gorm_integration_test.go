package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"floatchat-be/internal/model"
	"floatchat-be/internal/repository/implementation"
	"floatchat-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepositoryAgainstPostgres(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)

	// everything happens inside a transaction that is rolled back
	tx := gormDB.Begin()
	require.NoError(t, tx.Error)
	defer tx.Rollback()

	require.NoError(t, tx.AutoMigrate(&model.ArgoProfile{}))

	day := time.Date(1999, 1, 7, 12, 0, 0, 0, time.UTC)
	rows := []model.ArgoProfile{
		{ProfileId: 990001, Latitude: 10, Longitude: 70, Datetime: day, Pressure: 10, Temperature: 27.0, Salinity: 35.0, ProjectName: "TEST", PlatformType: "ARVOR"},
		{ProfileId: 990001, Latitude: 10, Longitude: 70, Datetime: day, Pressure: 5, Temperature: 28.0, Salinity: 35.2, ProjectName: "TEST", PlatformType: "ARVOR"},
		{ProfileId: 990002, Latitude: 11, Longitude: 71, Datetime: day.Add(2 * time.Hour), Pressure: 3, Temperature: 28.5, Salinity: 34.9, ProjectName: "TEST", PlatformType: "APEX"},
		{ProfileId: 990003, Latitude: 12, Longitude: 72, Datetime: day.AddDate(0, 0, 1), Pressure: 1, Temperature: 29.0, Salinity: 34.0, ProjectName: "TEST", PlatformType: "APEX"},
	}
	require.NoError(t, tx.Create(&rows).Error)

	repo := implementation.NewProfileRepository(tx)
	profiles, err := repo.FindShallowestByDate(context.Background(), day)
	require.NoError(t, err)

	byId := map[int64]float64{}
	for _, p := range profiles {
		byId[p.ProfileId] = p.Pressure
	}
	assert.Len(t, byId, len(profiles), "one row per profile")
	assert.Equal(t, 5.0, byId[990001])
	assert.Equal(t, 3.0, byId[990002])
	assert.NotContains(t, byId, int64(990003))

	empty, err := repo.FindShallowestByDate(context.Background(), time.Date(1901, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, empty)

	assert.NoError(t, repo.Ping(context.Background()))
}
