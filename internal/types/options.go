package types

import (
	"time"

	"github.com/google/uuid"
)

type ImprovementAreaOption struct {
	OptionID     int       `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	Description  string    `gorm:"column:description" json:"description"`
	DisplayOrder int       `gorm:"not null;column:display_order" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

func (ImprovementAreaOption) TableName() string {
	return "improvement_areas_options"
}

type WellnessActivityOption struct {
	OptionID     int       `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id"`
	Name         string    `gorm:"not null;column:name" json:"name"`
	Description  string    `gorm:"column:description" json:"description"`
	DisplayOrder int       `gorm:"not null;column:display_order" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

func (WellnessActivityOption) TableName() string {
	return "wellness_activities_options"
}

type ProfileImprovementArea struct {
	ProfileID     uuid.UUID `gorm:"type:uuid;column:profile_id;primaryKey" json:"profile_id"`
	OptionID      int       `gorm:"column:option_id;primaryKey" json:"option_id"`
	PriorityOrder int       `gorm:"not null;default:0;column:priority_order" json:"priority_order"`
}

func (ProfileImprovementArea) TableName() string {
	return "profile_improvement_areas"
}

type ProfileWellnessActivity struct {
	ProfileID uuid.UUID `gorm:"type:uuid;column:profile_id;primaryKey" json:"profile_id"`
	OptionID  int       `gorm:"column:option_id;primaryKey" json:"option_id"`
}

func (ProfileWellnessActivity) TableName() string {
	return "profile_wellness_activities"
}
