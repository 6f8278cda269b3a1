package model

import (
	"time"
)

// BreathingSession 一次呼吸练习，可选关联触发它的心情打卡
type BreathingSession struct {
	ID            uint       `gorm:"column:breathing_session_id;primaryKey;autoIncrement" json:"id"`
	UserID        uint       `gorm:"index;not null" json:"userId"`
	MoodSessionID *uint      `gorm:"column:session_id" json:"moodSessionId"`
	LevelID       int        `gorm:"not null" json:"levelId"`
	StartedAt     time.Time  `gorm:"autoCreateTime" json:"startedAt"`
	CompletedAt   *time.Time `json:"completedAt"`
	PointsEarned  int        `gorm:"not null;default:0" json:"pointsEarned"`

	User        *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MoodSession *MoodSession    `gorm:"foreignKey:MoodSessionID;constraint:OnDelete:SET NULL" json:"-"`
	Level       *BreathingLevel `gorm:"foreignKey:LevelID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (BreathingSession) TableName() string {
	return "breathing_sessions"
}
