package service

import (
	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/repository"
)

// Snapshot 五张表的全量读取结果，格式化交给调用方
type Snapshot struct {
	Users             []model.User
	MoodSessions      []model.MoodSession
	BreathingLevels   []model.BreathingLevel
	BreathingSessions []model.BreathingSession
	Stats             []model.UserStats
}

type ReportService struct {
	UserRepo      *repository.UserRepository
	MoodRepo      *repository.MoodSessionRepository
	LevelRepo     *repository.BreathingLevelRepository
	BreathingRepo *repository.BreathingSessionRepository
	StatsRepo     *repository.StatsRepository
}

func NewReportService(
	userRepo *repository.UserRepository,
	moodRepo *repository.MoodSessionRepository,
	levelRepo *repository.BreathingLevelRepository,
	breathingRepo *repository.BreathingSessionRepository,
	statsRepo *repository.StatsRepository,
) *ReportService {
	return &ReportService{
		UserRepo:      userRepo,
		MoodRepo:      moodRepo,
		LevelRepo:     levelRepo,
		BreathingRepo: breathingRepo,
		StatsRepo:     statsRepo,
	}
}

func (s *ReportService) Snapshot() (*Snapshot, error) {
	snap := &Snapshot{}

	var err error
	if snap.Users, err = s.UserRepo.FindAll(); err != nil {
		return nil, err
	}
	if snap.MoodSessions, err = s.MoodRepo.FindAll(); err != nil {
		return nil, err
	}
	if snap.BreathingLevels, err = s.LevelRepo.FindAll(); err != nil {
		return nil, err
	}
	if snap.BreathingSessions, err = s.BreathingRepo.FindAll(); err != nil {
		return nil, err
	}
	if snap.Stats, err = s.StatsRepo.FindAll(); err != nil {
		return nil, err
	}
	return snap, nil
}
