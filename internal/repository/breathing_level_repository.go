package repository

import (
	"errors"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/util"

	"gorm.io/gorm"
)

type BreathingLevelRepository struct {
	DB *gorm.DB
}

func NewBreathingLevelRepository(db *gorm.DB) *BreathingLevelRepository {
	return &BreathingLevelRepository{DB: db}
}

func (r *BreathingLevelRepository) FindByID(id int) (*model.BreathingLevel, error) {
	var level model.BreathingLevel
	err := r.DB.First(&level, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrBreathingLevelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *BreathingLevelRepository) FindAll() ([]model.BreathingLevel, error) {
	var levels []model.BreathingLevel
	err := r.DB.Find(&levels).Error
	return levels, err
}

// Delete 仍被呼吸练习引用的档位不允许删除（外键无级联），
// 此时返回 ErrReferentialIntegrity 且不改动任何行
func (r *BreathingLevelRepository) Delete(id int) error {
	res := r.DB.Delete(&model.BreathingLevel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return util.ErrBreathingLevelNotFound
	}
	return nil
}
