package service

import (
	"path/filepath"
	"testing"

	"harmonylink_backend/internal/config"
	"harmonylink_backend/internal/repository"
	"harmonylink_backend/pkg/database"
	"harmonylink_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testServices struct {
	db       *gorm.DB
	account  *AccountService
	wellness *WellnessService
	stats    *StatsService
	report   *ReportService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()

	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	db, err := database.InitDB(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "harmonylink_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	userRepo := repository.NewUserRepository(db)
	moodRepo := repository.NewMoodSessionRepository(db)
	levelRepo := repository.NewBreathingLevelRepository(db)
	breathingRepo := repository.NewBreathingSessionRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	stats := NewStatsService(statsRepo)
	return &testServices{
		db:       db,
		account:  NewAccountService(userRepo),
		wellness: NewWellnessService(moodRepo, breathingRepo, levelRepo, stats),
		stats:    stats,
		report:   NewReportService(userRepo, moodRepo, levelRepo, breathingRepo, statsRepo),
	}
}

func strPtr(s string) *string {
	return &s
}
