package types

import (
	"time"

	"github.com/google/uuid"
)

// Read-side projections assembled by repos. None of these map to a table of
// their own; they are scan targets for joined queries.

type SurveyWithOwner struct {
	SurveyID     uuid.UUID `json:"survey_id"`
	ProfileID    uuid.UUID `json:"profile_id"`
	ConsentGiven bool      `json:"consent_given"`
	SurveyDate   time.Time `json:"survey_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
}

type ProfileOwner struct {
	ProfileID uuid.UUID `json:"profile_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
}

type ProfileWithUser struct {
	Profile
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ResponseDetail struct {
	ResponseID       int64   `json:"response_id"`
	QuestionID       int     `json:"question_id"`
	QuestionText     string  `json:"question_text"`
	SectionNumber    int     `json:"section_number"`
	QuestionNumber   int     `json:"question_number"`
	SelectedOptionID int     `json:"selected_option_id"`
	OptionText       string  `json:"option_text"`
	Score            float64 `json:"score"`
}

type CategoryScoreDetail struct {
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	DisplayOrder int     `json:"display_order"`
	Score        float64 `json:"score"`
}

type SurveyDetail struct {
	Survey
	Owner          ProfileOwner          `json:"owner"`
	Responses      []ResponseDetail      `json:"responses"`
	CategoryScores []CategoryScoreDetail `json:"category_scores"`
}

type SurveySummary struct {
	Survey
	CategoryScores []CategoryScoreDetail `json:"category_scores"`
}

type SurveyHistoryEntry struct {
	SurveyID          uuid.UUID `json:"survey_id"`
	ProfileID         uuid.UUID `json:"profile_id"`
	SurveyDate        time.Time `json:"survey_date"`
	CreatedAt         time.Time `json:"created_at"`
	QuestionsAnswered int64     `json:"questions_answered"`
	TotalScore        float64   `json:"total_score"`
}

type SurveyStatistics struct {
	TotalSurveys   int64      `json:"total_surveys"`
	UniqueProfiles int64      `json:"unique_profiles"`
	LatestSurvey   *time.Time `json:"latest_survey"`
	FirstSurvey    *time.Time `json:"first_survey"`
}

type MappingEntry struct {
	MappingID    int     `json:"mapping_id"`
	QuestionID   int     `json:"question_id"`
	QuestionText string  `json:"question_text"`
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Weight       float64 `json:"weight"`
	IsExternal   bool    `json:"is_external"`
}

type CategoryQuestion struct {
	QuestionID     int     `json:"question_id"`
	QuestionText   string  `json:"question_text"`
	SectionNumber  int     `json:"section_number"`
	QuestionNumber int     `json:"question_number"`
	Weight         float64 `json:"weight"`
	IsExternal     bool    `json:"is_external"`
}

type CategoryWithQuestions struct {
	Category
	Questions []CategoryQuestion `json:"questions"`
}

type QuestionnaireSection struct {
	SectionNumber int        `json:"section_number"`
	Questions     []Question `json:"questions"`
}

type ImprovementAreaDetail struct {
	ProfileID     uuid.UUID `json:"profile_id"`
	OptionID      int       `json:"option_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PriorityOrder int       `json:"priority_order"`
}

type WellnessActivityDetail struct {
	ProfileID   uuid.UUID `json:"profile_id"`
	OptionID    int       `json:"option_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
