package repository

import (
	"context"
	"log"
	"time"

	"skillsphere-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssessmentRepository struct {
	Col *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{Col: db.Collection("assessments")}
}

func (r *AssessmentRepository) FindByID(ctx context.Context, id string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// SeedDefaults inserts the built-in assessment templates if the collection is
// empty. Templates are keyed by stable string ids so re-seeding is a no-op.
func (r *AssessmentRepository) SeedDefaults(ctx context.Context) error {
	count, err := r.Col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Assessments already seeded")
		return nil
	}

	now := time.Now().UTC()
	assessments := []interface{}{
		models.Assessment{
			ID:               "frontend-engineering",
			Title:            "Frontend Engineering",
			Description:      "Build responsive interfaces with React, optimize performance, and implement modern UI patterns.",
			Difficulty:       "Intermediate",
			Duration:         45,
			Skills:           []string{"React", "CSS", "JavaScript", "Performance"},
			ScenarioTemplate: "frontend",
			CreatedAt:        now,
		},
		models.Assessment{
			ID:               "backend-development",
			Title:            "Backend Development",
			Description:      "Design RESTful APIs, implement authentication, and optimize database queries.",
			Difficulty:       "Advanced",
			Duration:         60,
			Skills:           []string{"Node.js", "Python", "API Design", "Security"},
			ScenarioTemplate: "backend",
			CreatedAt:        now,
		},
		models.Assessment{
			ID:               "system-design",
			Title:            "System Design",
			Description:      "Architect scalable systems, handle distributed challenges, and optimize for high availability.",
			Difficulty:       "Advanced",
			Duration:         90,
			Skills:           []string{"Scalability", "Microservices", "Caching", "Load Balancing"},
			ScenarioTemplate: "system-design",
			CreatedAt:        now,
		},
	}

	if _, err := r.Col.InsertMany(ctx, assessments); err != nil {
		return err
	}
	log.Printf("Seeded %d assessments", len(assessments))
	return nil
}
