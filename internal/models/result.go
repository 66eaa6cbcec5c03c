package models

import "time"

// AssessmentResult is the append-only record of one completed attempt.
type AssessmentResult struct {
	ID                  string    `bson:"_id,omitempty" json:"id"`
	UserID              string    `bson:"user_id" json:"user_id"`
	AssessmentID        string    `bson:"assessment_id" json:"assessment_id"`
	Scenario            string    `bson:"scenario" json:"scenario"`
	UserResponse        string    `bson:"user_response" json:"user_response"`
	Score               float64   `bson:"score" json:"score"` // 0-100
	AIFeedback          string    `bson:"ai_feedback" json:"ai_feedback"`
	ImprovementDelta    float64   `bson:"improvement_delta" json:"improvement_delta"`
	Strengths           []string  `bson:"strengths" json:"strengths"`
	AreasForImprovement []string  `bson:"areas_for_improvement" json:"areas_for_improvement"`
	ProficiencyLevel    string    `bson:"proficiency_level" json:"proficiency_level"`
	CompletedAt         time.Time `bson:"completed_at" json:"completed_at"`
}
