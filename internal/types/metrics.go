package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WellnessMetric struct {
	MetricID         int64     `gorm:"column:metric_id;primaryKey;autoIncrement" json:"metric_id"`
	CalculationDate  time.Time `gorm:"not null;index;column:calculation_date" json:"calculation_date"`
	TotalSurveys     int64     `gorm:"not null;column:total_surveys" json:"total_surveys"`
	ActiveProfiles   int64     `gorm:"not null;column:active_profiles" json:"active_profiles"`
	AverageTotalScore float64  `gorm:"not null;column:average_total_score" json:"average_total_score"`
}

func (WellnessMetric) TableName() string {
	return "wellness_metrics"
}

type LoginHistory struct {
	LoginID        int64     `gorm:"column:login_id;primaryKey;autoIncrement" json:"login_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	LoginTimestamp time.Time `gorm:"not null;column:login_timestamp" json:"login_timestamp"`
	IPAddress      string    `gorm:"column:ip_address" json:"ip_address"`
	UserAgent      string    `gorm:"column:user_agent" json:"user_agent"`
	Success        bool      `gorm:"not null;column:success" json:"success"`
}

func (LoginHistory) TableName() string {
	return "login_history"
}

type UserActivityLog struct {
	ActivityID      int64          `gorm:"column:activity_id;primaryKey;autoIncrement" json:"activity_id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	ActivityType    string         `gorm:"not null;column:activity_type" json:"activity_type"`
	ActivityDetails datatypes.JSON `gorm:"column:activity_details" json:"activity_details"`
	IPAddress       string         `gorm:"column:ip_address" json:"ip_address"`
	CreatedAt       time.Time      `gorm:"not null;column:created_at" json:"created_at"`
}

func (UserActivityLog) TableName() string {
	return "user_activity_log"
}
