package service

import (
	"context"
	"errors"
	"time"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/repository"
	"harmonylink_backend/internal/util"
	"harmonylink_backend/pkg/logger"
	"harmonylink_backend/pkg/monitoring"
	"harmonylink_backend/pkg/tracing"

	"go.uber.org/zap"
)

type StatsService struct {
	StatsRepo *repository.StatsRepository
}

func NewStatsService(statsRepo *repository.StatsRepository) *StatsService {
	return &StatsService{StatsRepo: statsRepo}
}

// ApplyActivity 把一次有效活动计入用户统计。
// 没有统计行的用户按无操作处理并记录告警，不会凭空补一行。
func (s *StatsService) ApplyActivity(ctx context.Context, userID uint, points int) (err error) {
	_, span := tracing.Tracer.Start(ctx, "stats.ApplyActivity")
	defer span.End()

	start := time.Now()
	defer func() { monitoring.ObserveOperation("user_stats", "update", start, err) }()

	err = s.StatsRepo.ApplyActivity(userID, points)
	if errors.Is(err, util.ErrStatsNotFound) {
		logger.Log.Warn("stats update skipped, no stats row for user",
			zap.Uint("userId", userID),
			zap.Int("points", points),
		)
		return nil
	}
	return err
}

func (s *StatsService) GetUserStats(ctx context.Context, userID uint) (*model.UserStats, error) {
	_, span := tracing.Tracer.Start(ctx, "stats.GetUserStats")
	defer span.End()

	return s.StatsRepo.FindByUser(userID)
}
