package service

import (
	"context"
	"fmt"
	"time"

	"skillsphere-service/internal/models"

	"github.com/google/uuid"
)

// ScenarioGenerator is the external AI collaborator contract.
type ScenarioGenerator interface {
	GenerateScenario(ctx context.Context, title, difficulty string, skills []string) (string, error)
	EvaluateResponse(ctx context.Context, scenario, userResponse string, skills []string) (*Evaluation, error)
}

// AssessmentService orchestrates the two-phase assessment flow: start creates
// a session with a generated scenario, submit evaluates the response and
// records an immutable result.
type AssessmentService struct {
	Assessments AssessmentStore
	Sessions    SessionStore
	Results     ResultStore
	Generator   ScenarioGenerator
	Analytics   *AnalyticsService
}

func NewAssessmentService(
	assessments AssessmentStore,
	sessions SessionStore,
	results ResultStore,
	generator ScenarioGenerator,
	analytics *AnalyticsService,
) *AssessmentService {
	return &AssessmentService{
		Assessments: assessments,
		Sessions:    sessions,
		Results:     results,
		Generator:   generator,
		Analytics:   analytics,
	}
}

func (s *AssessmentService) Start(ctx context.Context, req *models.StartAssessmentRequest) (*models.StartAssessmentResponse, error) {
	assessment, err := s.Assessments.FindByID(ctx, req.AssessmentID)
	if err != nil {
		return nil, ErrAssessmentNotFound
	}

	scenario, err := s.Generator.GenerateScenario(ctx, assessment.Title, assessment.Difficulty, assessment.Skills)
	if err != nil {
		return nil, err
	}

	session := &models.AssessmentSession{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		AssessmentID:    req.AssessmentID,
		AssessmentTitle: assessment.Title,
		Scenario:        scenario,
		Skills:          assessment.Skills,
		Completed:       false,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.StartAssessmentResponse{
		SessionID:          session.ID,
		AssessmentTitle:    assessment.Title,
		Scenario:           scenario,
		MaxDurationMinutes: assessment.Duration,
	}, nil
}

func (s *AssessmentService) Submit(ctx context.Context, req *models.SubmitAssessmentRequest) (*models.SubmitAssessmentResponse, error) {
	session, err := s.Sessions.FindByID(ctx, req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if session.Completed {
		return nil, ErrSessionCompleted
	}

	evaluation, err := s.Generator.EvaluateResponse(ctx, session.Scenario, req.UserResponse, session.Skills)
	if err != nil {
		return nil, err
	}

	proficiency := ProficiencyLevel(evaluation.Score)
	improvementDelta := s.Analytics.ComputeImprovement(ctx, req.UserID, session.AssessmentID)

	// Claim the session before writing the result. The conditional flip is
	// the serialization point: a concurrent submit that loses the race gets
	// ErrSessionCompleted and no second result is created.
	won, err := s.Sessions.MarkCompleted(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	if !won {
		return nil, ErrSessionCompleted
	}

	result := &models.AssessmentResult{
		ID:                  uuid.NewString(),
		UserID:              req.UserID,
		AssessmentID:        session.AssessmentID,
		Scenario:            session.Scenario,
		UserResponse:        req.UserResponse,
		Score:               evaluation.Score,
		AIFeedback:          evaluation.Feedback,
		ImprovementDelta:    improvementDelta,
		Strengths:           evaluation.Strengths,
		AreasForImprovement: evaluation.AreasForImprovement,
		ProficiencyLevel:    proficiency,
		CompletedAt:         time.Now().UTC(),
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	return &models.SubmitAssessmentResponse{
		ResultID:            result.ID,
		Score:               evaluation.Score,
		AIFeedback:          evaluation.Feedback,
		ImprovementDelta:    improvementDelta,
		ProficiencyLevel:    proficiency,
		Strengths:           evaluation.Strengths,
		AreasForImprovement: evaluation.AreasForImprovement,
	}, nil
}

func (s *AssessmentService) Dashboard(ctx context.Context, userID string) models.DashboardMetrics {
	return s.Analytics.DashboardMetrics(ctx, userID)
}
