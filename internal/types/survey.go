package types

import (
	"time"

	"github.com/google/uuid"
)

type Survey struct {
	SurveyID     uuid.UUID `gorm:"type:uuid;column:survey_id;primaryKey" json:"survey_id"`
	ProfileID    uuid.UUID `gorm:"type:uuid;not null;index;column:profile_id" json:"profile_id"`
	ConsentGiven bool      `gorm:"not null;default:false;column:consent_given" json:"consent_given"`
	SurveyDate   time.Time `gorm:"not null;column:survey_date" json:"survey_date"`
	CreatedAt    time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (Survey) TableName() string {
	return "surveys"
}

type SurveyResponse struct {
	ResponseID       int64     `gorm:"column:response_id;primaryKey;autoIncrement" json:"response_id"`
	SurveyID         uuid.UUID `gorm:"type:uuid;not null;index;column:survey_id" json:"survey_id"`
	QuestionID       int       `gorm:"not null;column:question_id" json:"question_id"`
	SelectedOptionID int       `gorm:"not null;column:selected_option_id" json:"selected_option_id"`
	Score            float64   `gorm:"not null;column:score" json:"score"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

type SurveyCategoryScore struct {
	SurveyID   uuid.UUID `gorm:"type:uuid;column:survey_id;primaryKey" json:"survey_id"`
	CategoryID int       `gorm:"column:category_id;primaryKey" json:"category_id"`
	Score      float64   `gorm:"not null;column:score" json:"score"`
}

func (SurveyCategoryScore) TableName() string {
	return "survey_category_scores"
}
