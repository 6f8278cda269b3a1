package repository

import (
	"testing"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodSessionStressLevelBounds(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMoodSessionRepository(db)
	user := createTestUser(t, db, "mood@example.com")

	for _, invalid := range []int{0, 6, -1} {
		err := repo.Create(&model.MoodSession{UserID: user.ID, StressLevel: invalid})
		assert.ErrorIs(t, err, util.ErrConstraintViolation, "stress level %d", invalid)
	}

	for valid := 1; valid <= 5; valid++ {
		session := &model.MoodSession{UserID: user.ID, StressLevel: valid}
		require.NoError(t, repo.Create(session))

		got, err := repo.FindByID(session.ID)
		require.NoError(t, err)
		assert.Equal(t, valid, got.StressLevel)
	}
}

func TestMoodSessionUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	err := NewMoodSessionRepository(db).Create(&model.MoodSession{UserID: 9999, StressLevel: 3})
	assert.ErrorIs(t, err, util.ErrReferentialIntegrity)
}

func TestMoodSessionStoresAnswers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMoodSessionRepository(db)
	user := createTestUser(t, db, "answers@example.com")

	session := &model.MoodSession{
		UserID:       user.ID,
		StressLevel:  4,
		Q1Answer:     strPtr("tired"),
		Q2Answer:     strPtr("not good"),
		Q3Answer:     strPtr("need rest"),
		PointsEarned: 5,
	}
	require.NoError(t, repo.Create(session))

	got, err := repo.FindByID(session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Q1Answer)
	assert.Equal(t, "tired", *got.Q1Answer)
	require.NotNil(t, got.Q3Answer)
	assert.Equal(t, "need rest", *got.Q3Answer)
	assert.Equal(t, 5, got.PointsEarned)
}

func TestDeleteMoodSessionClearsBreathingLink(t *testing.T) {
	db := setupTestDB(t)
	moodRepo := NewMoodSessionRepository(db)
	breathingRepo := NewBreathingSessionRepository(db)
	user := createTestUser(t, db, "link@example.com")

	mood := &model.MoodSession{UserID: user.ID, StressLevel: 2}
	require.NoError(t, moodRepo.Create(mood))

	breathing := &model.BreathingSession{UserID: user.ID, LevelID: 2, MoodSessionID: &mood.ID}
	require.NoError(t, breathingRepo.Create(breathing))

	require.NoError(t, moodRepo.Delete(mood.ID))

	// 呼吸练习保留，只是关联被置空
	got, err := breathingRepo.FindByID(breathing.ID)
	require.NoError(t, err)
	assert.Nil(t, got.MoodSessionID)
}

func TestDeleteMoodSessionNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := NewMoodSessionRepository(db).Delete(404)
	assert.ErrorIs(t, err, util.ErrMoodSessionNotFound)
}
