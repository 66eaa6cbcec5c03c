package models

import "time"

// AssessmentSession is one attempt at an assessment. It is created when the
// user starts an assessment and flipped to completed exactly once on submit.
type AssessmentSession struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	AssessmentID    string    `bson:"assessment_id" json:"assessment_id"`
	AssessmentTitle string    `bson:"assessment_title" json:"assessment_title"`
	Scenario        string    `bson:"scenario" json:"scenario"`
	Skills          []string  `bson:"skills" json:"skills"`
	Completed       bool      `bson:"completed" json:"completed"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
