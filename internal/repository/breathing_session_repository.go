package repository

import (
	"errors"
	"time"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/util"

	"gorm.io/gorm"
)

type BreathingSessionRepository struct {
	DB *gorm.DB
}

func NewBreathingSessionRepository(db *gorm.DB) *BreathingSessionRepository {
	return &BreathingSessionRepository{DB: db}
}

func (r *BreathingSessionRepository) Create(session *model.BreathingSession) error {
	return translate(r.DB.Create(session).Error)
}

// Complete 记录练习完成时刻
func (r *BreathingSessionRepository) Complete(id uint, completedAt time.Time) error {
	res := r.DB.Model(&model.BreathingSession{}).
		Where("breathing_session_id = ?", id).
		Update("completed_at", completedAt)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrBreathingSessionNotFound
	}
	return nil
}

func (r *BreathingSessionRepository) FindByID(id uint) (*model.BreathingSession, error) {
	var session model.BreathingSession
	err := r.DB.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrBreathingSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *BreathingSessionRepository) FindAll() ([]model.BreathingSession, error) {
	var sessions []model.BreathingSession
	err := r.DB.Find(&sessions).Error
	return sessions, err
}

func (r *BreathingSessionRepository) FindByUser(userID uint) ([]model.BreathingSession, error) {
	var sessions []model.BreathingSession
	err := r.DB.Where("user_id = ?", userID).Find(&sessions).Error
	return sessions, err
}

func (r *BreathingSessionRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.BreathingSession{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrBreathingSessionNotFound
	}
	return nil
}
