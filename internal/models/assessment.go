package models

import "time"

// Assessment is a reusable template describing a skill-test topic. Templates
// are seeded once at startup and treated as immutable afterwards.
type Assessment struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	Title            string    `bson:"title" json:"title"`
	Description      string    `bson:"description" json:"description"`
	Difficulty       string    `bson:"difficulty" json:"difficulty"` // Beginner, Intermediate, Advanced
	Duration         int       `bson:"duration" json:"duration"`     // minutes
	Skills           []string  `bson:"skills" json:"skills"`
	ScenarioTemplate string    `bson:"scenario_template" json:"scenario_template"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}
