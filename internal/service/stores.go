package service

import (
	"context"

	"skillsphere-service/internal/models"
)

// Store contracts consumed by the services. The mongo repositories satisfy
// these; tests plug in in-memory fakes.

type AssessmentStore interface {
	FindByID(ctx context.Context, id string) (*models.Assessment, error)
}

type SessionStore interface {
	FindByID(ctx context.Context, id string) (*models.AssessmentSession, error)
	Create(ctx context.Context, session *models.AssessmentSession) error
	MarkCompleted(ctx context.Context, id string) (bool, error)
	CountActiveByUser(ctx context.Context, userID string) (int64, error)
}

type ResultStore interface {
	Create(ctx context.Context, result *models.AssessmentResult) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	FindByUserAsc(ctx context.Context, userID string) ([]models.AssessmentResult, error)
	FindByUserAndAssessmentAsc(ctx context.Context, userID, assessmentID string) ([]models.AssessmentResult, error)
	FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.AssessmentResult, error)
	SkillProgress(ctx context.Context, userID string, limit int64) ([]models.SkillProgress, error)
}
