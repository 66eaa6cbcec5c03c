package models

type StartAssessmentRequest struct {
	AssessmentID string `json:"assessment_id" binding:"required"`
	UserID       string `json:"user_id" binding:"required"`
}

type StartAssessmentResponse struct {
	SessionID          string `json:"session_id"`
	AssessmentTitle    string `json:"assessment_title"`
	Scenario           string `json:"scenario"`
	MaxDurationMinutes int    `json:"max_duration_minutes"`
}

type SubmitAssessmentRequest struct {
	SessionID        string `json:"session_id" binding:"required"`
	UserID           string `json:"user_id" binding:"required"`
	UserResponse     string `json:"user_response" binding:"required"`
	TimeSpentMinutes int    `json:"time_spent_minutes"`
}

type SubmitAssessmentResponse struct {
	ResultID            string   `json:"result_id"`
	Score               float64  `json:"score"`
	AIFeedback          string   `json:"ai_feedback"`
	ImprovementDelta    float64  `json:"improvement_delta"`
	ProficiencyLevel    string   `json:"proficiency_level"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
}

// SkillProgress is one dashboard entry: the mean score for an assessment
// title, rounded to the nearest integer.
type SkillProgress struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type DashboardMetrics struct {
	ActiveAssessments    int             `json:"active_assessments"`
	CompletedAssessments int             `json:"completed_assessments"`
	AvgScore             float64         `json:"avg_score"`
	Improvement          float64         `json:"improvement"`
	SkillProgress        []SkillProgress `json:"skill_progress"`
	AIFeedback           []string        `json:"ai_feedback"`
}
