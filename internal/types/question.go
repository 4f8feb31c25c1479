package types

import "time"

type Question struct {
	QuestionID     int              `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	QuestionText   string           `gorm:"not null;column:question_text" json:"question_text"`
	SectionNumber  int              `gorm:"not null;column:section_number" json:"section_number"`
	QuestionNumber int              `gorm:"not null;column:question_number" json:"question_number"`
	CreatedAt      time.Time        `gorm:"not null;column:created_at" json:"created_at"`
	Options        []QuestionOption `gorm:"foreignKey:QuestionID;references:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "wellness_questions"
}

type QuestionOption struct {
	OptionID     int     `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id"`
	QuestionID   int     `gorm:"not null;index;column:question_id" json:"question_id"`
	OptionText   string  `gorm:"not null;column:option_text" json:"option_text"`
	Score        float64 `gorm:"not null;column:score" json:"score"`
	DisplayOrder int     `gorm:"not null;column:display_order" json:"display_order"`
}

func (QuestionOption) TableName() string {
	return "wellness_question_options"
}
