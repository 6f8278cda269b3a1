package repository

import (
	"errors"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/util"

	"gorm.io/gorm"
)

type MoodSessionRepository struct {
	DB *gorm.DB
}

func NewMoodSessionRepository(db *gorm.DB) *MoodSessionRepository {
	return &MoodSessionRepository{DB: db}
}

// Create 插入一次心情打卡；stress_level 超出 [1,5] 或用户不存在时
// 由数据库约束拒绝
func (r *MoodSessionRepository) Create(session *model.MoodSession) error {
	return translate(r.DB.Create(session).Error)
}

func (r *MoodSessionRepository) FindByID(id uint) (*model.MoodSession, error) {
	var session model.MoodSession
	err := r.DB.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrMoodSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *MoodSessionRepository) FindAll() ([]model.MoodSession, error) {
	var sessions []model.MoodSession
	err := r.DB.Find(&sessions).Error
	return sessions, err
}

func (r *MoodSessionRepository) FindByUser(userID uint) ([]model.MoodSession, error) {
	var sessions []model.MoodSession
	err := r.DB.Where("user_id = ?", userID).Find(&sessions).Error
	return sessions, err
}

// Delete 删除打卡记录，引用它的呼吸练习把关联置空而不是级联删除
func (r *MoodSessionRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.MoodSession{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrMoodSessionNotFound
	}
	return nil
}
