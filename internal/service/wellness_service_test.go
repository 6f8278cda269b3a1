package service

import (
	"context"
	"testing"
	"time"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMoodCheckin(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.account.Register(ctx, "Mia", "mia@example.com", "pass")
	require.NoError(t, err)

	session, err := s.wellness.RecordMoodCheckin(ctx, user.ID, 4, strPtr("tired"), strPtr("not good"), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, session.PointsEarned)

	// 心情打卡本身不改动统计，积分入账由呼吸练习触发
	stats, err := s.stats.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalPoints)
	assert.Equal(t, 0, stats.CurrentStreakDays)
}

func TestRecordMoodCheckinInvalidStress(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.account.Register(ctx, "Max", "max@example.com", "pass")
	require.NoError(t, err)

	_, err = s.wellness.RecordMoodCheckin(ctx, user.ID, 6, nil, nil, nil)
	assert.ErrorIs(t, err, util.ErrConstraintViolation)
}

func TestRecordBreathingSessionAwardsLevelPoints(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.account.Register(ctx, "Ben", "ben@example.com", "pass")
	require.NoError(t, err)

	session, err := s.wellness.RecordBreathingSession(ctx, user.ID, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, session.PointsEarned)
	require.NotNil(t, session.CompletedAt)

	stats, err := s.stats.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, stats.TotalPoints)
	assert.Equal(t, 1, stats.CurrentStreakDays)
}

func TestRecordBreathingSessionUnknownLevel(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.account.Register(ctx, "Nia", "nia@example.com", "pass")
	require.NoError(t, err)

	_, err = s.wellness.RecordBreathingSession(ctx, user.ID, 42, nil)
	assert.ErrorIs(t, err, util.ErrBreathingLevelNotFound)
}

func TestApplyActivityWithoutStatsRowIsNoOp(t *testing.T) {
	s := setupServices(t)

	// 不存在的用户：记为无操作，不报错也不造行
	require.NoError(t, s.stats.ApplyActivity(context.Background(), 9999, 10))

	var count int64
	require.NoError(t, s.db.Model(&model.UserStats{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteMoodSession(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.account.Register(ctx, "Ines", "ines@example.com", "pass")
	require.NoError(t, err)

	mood, err := s.wellness.RecordMoodCheckin(ctx, user.ID, 2, nil, nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.wellness.DeleteMoodSession(ctx, mood.ID))
	_, err = s.wellness.MoodRepo.FindByID(mood.ID)
	assert.ErrorIs(t, err, util.ErrMoodSessionNotFound)

	// 再删一次应报未找到
	assert.ErrorIs(t, s.wellness.DeleteMoodSession(ctx, mood.ID), util.ErrMoodSessionNotFound)
}

func TestDeleteBreathingSession(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.account.Register(ctx, "Omar", "omar@example.com", "pass")
	require.NoError(t, err)

	session, err := s.wellness.RecordBreathingSession(ctx, user.ID, 1, nil)
	require.NoError(t, err)

	require.NoError(t, s.wellness.DeleteBreathingSession(ctx, session.ID))
	_, err = s.wellness.BreathingRepo.FindByID(session.ID)
	assert.ErrorIs(t, err, util.ErrBreathingSessionNotFound)

	assert.ErrorIs(t, s.wellness.DeleteBreathingSession(ctx, session.ID), util.ErrBreathingSessionNotFound)
}

func TestEndToEndScenario(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	user, err := s.account.CreateUser(ctx, "Moamen User", "moamen@example.com", "hash123")
	require.NoError(t, err)

	mood, err := s.wellness.RecordMoodCheckin(ctx, user.ID, 4, strPtr("tired"), strPtr("not good"), strPtr("need rest"))
	require.NoError(t, err)
	assert.Equal(t, 5, mood.PointsEarned)

	breathing, err := s.wellness.RecordBreathingSession(ctx, user.ID, 3, &mood.ID)
	require.NoError(t, err)
	require.NotNil(t, breathing.MoodSessionID)
	assert.Equal(t, mood.ID, *breathing.MoodSessionID)

	stats, err := s.stats.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, stats.TotalPoints)
	assert.Equal(t, 1, stats.CurrentStreakDays)
	require.NotNil(t, stats.LastActivityDate)
	assert.Equal(t, time.Now().Format(model.ActivityDateLayout), stats.LastActivityDate.String())

	snap, err := s.report.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Users, 1)
	assert.Len(t, snap.MoodSessions, 1)
	assert.Len(t, snap.BreathingLevels, 5)
	assert.Len(t, snap.BreathingSessions, 1)
	assert.Len(t, snap.Stats, 1)
}
