package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ActivityDateLayout last_activity_date 的存储格式（日历日，进程本地时区）
const ActivityDateLayout = "2006-01-02"

// ActivityDate 以日历日文本读写 last_activity_date。
// go-sqlite3 会把 date 列自动扫描成 time.Time，
// 这里统一归一回 2006-01-02 文本，保证连续天数判定用的
// 文本比较和调用方看到的值是同一个形式。
type ActivityDate string

func (d *ActivityDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = ActivityDate(v.Format(ActivityDateLayout))
	case string:
		*d = ActivityDate(v)
	case []byte:
		*d = ActivityDate(string(v))
	default:
		return fmt.Errorf("unsupported last_activity_date value %T", value)
	}
	return nil
}

func (d ActivityDate) Value() (driver.Value, error) {
	return string(d), nil
}

func (d ActivityDate) String() string {
	return string(d)
}

// UserStats 每个用户一行的累计积分与连续打卡天数
type UserStats struct {
	UserID            uint          `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"userId"`
	TotalPoints       int           `gorm:"not null;default:0" json:"totalPoints"`
	CurrentStreakDays int           `gorm:"not null;default:0" json:"currentStreakDays"`
	LastActivityDate  *ActivityDate `gorm:"type:date" json:"lastActivityDate"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
