package model

// BreathingLevel 呼吸练习难度档位，固定的参考数据
type BreathingLevel struct {
	ID              int    `gorm:"column:level_id;primaryKey;autoIncrement:false" json:"id"`
	Title           string `gorm:"size:100;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	DurationSeconds int    `gorm:"not null" json:"durationSeconds"`
	BasePoints      int    `gorm:"not null" json:"basePoints"`
}

func (BreathingLevel) TableName() string {
	return "breathing_levels"
}

// SeedBreathingLevels 五个固定档位，初始化时按 level_id 幂等写入
func SeedBreathingLevels() []BreathingLevel {
	return []BreathingLevel{
		{ID: 1, Title: "Level 1 - Easy", Description: "Short and simple breathing exercise.", DurationSeconds: 60, BasePoints: 10},
		{ID: 2, Title: "Level 2 - Light", Description: "Slightly longer breathing exercise.", DurationSeconds: 120, BasePoints: 20},
		{ID: 3, Title: "Level 3 - Medium", Description: "Moderate breathing exercise.", DurationSeconds: 180, BasePoints: 30},
		{ID: 4, Title: "Level 4 - Hard", Description: "Longer and more intense breathing.", DurationSeconds: 240, BasePoints: 40},
		{ID: 5, Title: "Level 5 - Expert", Description: "Longest and most challenging exercise.", DurationSeconds: 300, BasePoints: 50},
	}
}
