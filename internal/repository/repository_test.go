package repository

import (
	"path/filepath"
	"testing"

	"harmonylink_backend/internal/config"
	"harmonylink_backend/internal/model"
	"harmonylink_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB provisions a fresh file-backed store in a temp dir,
// with migrations applied and the breathing level catalog seeded.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.InitDB(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "harmonylink_test.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash123",
	}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func strPtr(s string) *string {
	return &s
}
