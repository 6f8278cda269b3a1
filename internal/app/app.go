package app

import (
	"context"

	"harmonylink_backend/internal/config"
	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/repository"
	"harmonylink_backend/internal/service"
	"harmonylink_backend/pkg/database"
	"harmonylink_backend/pkg/logger"
	"harmonylink_backend/pkg/monitoring"
	"harmonylink_backend/pkg/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Services *Services

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user      *repository.UserRepository
	mood      *repository.MoodSessionRepository
	level     *repository.BreathingLevelRepository
	breathing *repository.BreathingSessionRepository
	stats     *repository.StatsRepository
}

type Services struct {
	Account  *service.AccountService
	Wellness *service.WellnessService
	Stats    *service.StatsService
	Report   *service.ReportService
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		mood:      repository.NewMoodSessionRepository(db),
		level:     repository.NewBreathingLevelRepository(db),
		breathing: repository.NewBreathingSessionRepository(db),
		stats:     repository.NewStatsRepository(db),
	}
}

func initServices(repos *repositories) *Services {
	stats := service.NewStatsService(repos.stats)
	return &Services{
		Account:  service.NewAccountService(repos.user),
		Wellness: service.NewWellnessService(repos.mood, repos.breathing, repos.level, stats),
		Stats:    stats,
		Report:   service.NewReportService(repos.user, repos.mood, repos.level, repos.breathing, repos.stats),
	}
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       db,
		Services: initServices(initRepositories(db)),
	}

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("harmonylink", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
			return nil, err
		}
		app.tracerProvider = tp
	}

	if cfg.Metrics.Enabled {
		go func() {
			if err := monitoring.Serve(cfg.Metrics.Port); err != nil {
				logger.Log.Error("Metrics listener stopped", zap.Error(err))
			}
		}()
	}

	return app, nil
}

// RunDemo 初始化后的演示序列：样例用户、一次心情打卡、
// 一次呼吸练习（附带统计更新），返回五张表的快照
func (a *App) RunDemo() (*service.Snapshot, error) {
	ctx := context.Background()

	user, err := a.Services.Account.CreateUser(ctx, "Moamen User", "moamen@example.com", "hash123")
	if err != nil {
		return nil, err
	}

	q1, q2, q3 := "tired", "not good", "need rest"
	mood, err := a.Services.Wellness.RecordMoodCheckin(ctx, user.ID, 4, &q1, &q2, &q3)
	if err != nil {
		return nil, err
	}

	if _, err := a.Services.Wellness.RecordBreathingSession(ctx, user.ID, 3, &mood.ID); err != nil {
		return nil, err
	}

	logger.Log.Info("Demo sequence completed", zap.Uint("userId", user.ID))

	return a.Services.Report.Snapshot()
}

func (a *App) Close() error {
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	return database.Close(a.DB)
}

// Seeded 便于入口与脚本校验参考数据是否就位
func (a *App) Seeded() (bool, error) {
	var count int64
	if err := a.DB.Model(&model.BreathingLevel{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == int64(len(model.SeedBreathingLevels())), nil
}
