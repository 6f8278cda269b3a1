package model

import (
	"time"
)

// MoodSession 记录一次心情打卡：压力等级与最多三条自由回答
type MoodSession struct {
	ID           uint      `gorm:"column:session_id;primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"userId"`
	StressLevel  int       `gorm:"not null;check:stress_level BETWEEN 1 AND 5" json:"stressLevel"`
	Q1Answer     *string   `gorm:"type:text" json:"q1Answer"`
	Q2Answer     *string   `gorm:"type:text" json:"q2Answer"`
	Q3Answer     *string   `gorm:"type:text" json:"q3Answer"`
	PointsEarned int       `gorm:"not null;default:0" json:"pointsEarned"`
	CreatedAt    time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodSession) TableName() string {
	return "mood_sessions"
}
