package service

import (
	"context"
	"time"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/repository"
	"harmonylink_backend/pkg/monitoring"
	"harmonylink_backend/pkg/tracing"
)

// 每次心情打卡记在会话行上的积分
const moodCheckinPoints = 5

type WellnessService struct {
	MoodRepo      *repository.MoodSessionRepository
	BreathingRepo *repository.BreathingSessionRepository
	LevelRepo     *repository.BreathingLevelRepository
	Stats         *StatsService
}

func NewWellnessService(
	moodRepo *repository.MoodSessionRepository,
	breathingRepo *repository.BreathingSessionRepository,
	levelRepo *repository.BreathingLevelRepository,
	stats *StatsService,
) *WellnessService {
	return &WellnessService{
		MoodRepo:      moodRepo,
		BreathingRepo: breathingRepo,
		LevelRepo:     levelRepo,
		Stats:         stats,
	}
}

// RecordMoodCheckin 记录一次心情打卡。积分只落在会话行上，
// 统计的更新由之后完成的呼吸练习触发。
func (s *WellnessService) RecordMoodCheckin(ctx context.Context, userID uint, stressLevel int, q1, q2, q3 *string) (session *model.MoodSession, err error) {
	_, span := tracing.Tracer.Start(ctx, "wellness.RecordMoodCheckin")
	defer span.End()

	start := time.Now()
	defer func() { monitoring.ObserveOperation("mood_sessions", "create", start, err) }()

	session = &model.MoodSession{
		UserID:       userID,
		StressLevel:  stressLevel,
		Q1Answer:     q1,
		Q2Answer:     q2,
		Q3Answer:     q3,
		PointsEarned: moodCheckinPoints,
	}
	if err = s.MoodRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// RecordBreathingSession 完成一次呼吸练习：按档位发放基础积分，
// 立即标记完成并计入用户统计
func (s *WellnessService) RecordBreathingSession(ctx context.Context, userID uint, levelID int, moodSessionID *uint) (session *model.BreathingSession, err error) {
	_, span := tracing.Tracer.Start(ctx, "wellness.RecordBreathingSession")
	defer span.End()

	start := time.Now()
	defer func() { monitoring.ObserveOperation("breathing_sessions", "create", start, err) }()

	level, err := s.LevelRepo.FindByID(levelID)
	if err != nil {
		return nil, err
	}

	session = &model.BreathingSession{
		UserID:        userID,
		LevelID:       level.ID,
		MoodSessionID: moodSessionID,
		PointsEarned:  level.BasePoints,
	}
	if err = s.BreathingRepo.Create(session); err != nil {
		return nil, err
	}

	completedAt := time.Now()
	if err = s.BreathingRepo.Complete(session.ID, completedAt); err != nil {
		return nil, err
	}
	session.CompletedAt = &completedAt

	if err = s.Stats.ApplyActivity(ctx, userID, level.BasePoints); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *WellnessService) DeleteMoodSession(ctx context.Context, id uint) (err error) {
	_, span := tracing.Tracer.Start(ctx, "wellness.DeleteMoodSession")
	defer span.End()

	start := time.Now()
	defer func() { monitoring.ObserveOperation("mood_sessions", "delete", start, err) }()

	return s.MoodRepo.Delete(id)
}

func (s *WellnessService) DeleteBreathingSession(ctx context.Context, id uint) (err error) {
	_, span := tracing.Tracer.Start(ctx, "wellness.DeleteBreathingSession")
	defer span.End()

	start := time.Now()
	defer func() { monitoring.ObserveOperation("breathing_sessions", "delete", start, err) }()

	return s.BreathingRepo.Delete(id)
}
