package repository

import (
	"errors"
	"time"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/util"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// 连续天数的判定必须读到更新前的 last_activity_date，
// 所以积分、天数和日期在同一条 UPDATE 里完成：
// SET 子句按书写顺序求值，CASE 在日期被覆盖之前执行。
const applyActivitySQL = `
UPDATE user_stats
SET total_points = total_points + ?,
    current_streak_days = CASE
        WHEN last_activity_date = ? THEN current_streak_days + 1
        WHEN last_activity_date = ? THEN current_streak_days
        ELSE 1
    END,
    last_activity_date = ?
WHERE user_id = ?`

// ApplyActivity 累加积分并重算连续打卡天数。
// 昨天有活动则天数加一，今天已有活动则保持不变，
// 其余情况（首次活动或间隔超过一天）重置为 1。
// 该用户没有统计行时返回 ErrStatsNotFound，不会代为创建。
func (r *StatsRepository) ApplyActivity(userID uint, addedPoints int) error {
	return r.applyActivityOn(userID, addedPoints, time.Now())
}

func (r *StatsRepository) applyActivityOn(userID uint, addedPoints int, now time.Time) error {
	today := now.Format(model.ActivityDateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(model.ActivityDateLayout)

	res := r.DB.Exec(applyActivitySQL, addedPoints, yesterday, today, today, userID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrStatsNotFound
	}
	return nil
}

func (r *StatsRepository) FindByUser(userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.DB.First(&stats, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStatsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) FindAll() ([]model.UserStats, error) {
	var stats []model.UserStats
	err := r.DB.Find(&stats).Error
	return stats, err
}

func (r *StatsRepository) Delete(userID uint) error {
	res := r.DB.Delete(&model.UserStats{}, "user_id = ?", userID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrStatsNotFound
	}
	return nil
}
