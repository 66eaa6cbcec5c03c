package service

import (
	"context"
	"errors"
	"sort"

	"skillsphere-service/internal/models"
)

// In-memory store fakes. Result order mirrors insertion order, which stands
// in for the completed_at sort of the mongo repositories.

type fakeAssessmentStore struct {
	assessments map[string]*models.Assessment
}

func (f *fakeAssessmentStore) FindByID(ctx context.Context, id string) (*models.Assessment, error) {
	if a, ok := f.assessments[id]; ok {
		return a, nil
	}
	return nil, errors.New("mongo: no documents in result")
}

type fakeSessionStore struct {
	sessions  map[string]*models.AssessmentSession
	countErr  error
	createErr error
	onFind    func() // runs after FindByID takes its snapshot
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*models.AssessmentSession{}}
}

func (f *fakeSessionStore) FindByID(ctx context.Context, id string) (*models.AssessmentSession, error) {
	if s, ok := f.sessions[id]; ok {
		copied := *s
		if f.onFind != nil {
			f.onFind()
		}
		return &copied, nil
	}
	return nil, errors.New("mongo: no documents in result")
}

func (f *fakeSessionStore) Create(ctx context.Context, session *models.AssessmentSession) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeSessionStore) MarkCompleted(ctx context.Context, id string) (bool, error) {
	s, ok := f.sessions[id]
	if !ok || s.Completed {
		return false, nil
	}
	s.Completed = true
	return true, nil
}

func (f *fakeSessionStore) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, s := range f.sessions {
		if s.UserID == userID && !s.Completed {
			count++
		}
	}
	return count, nil
}

type fakeResultStore struct {
	results []models.AssessmentResult
	titles  map[string]string // assessment id -> title, for SkillProgress
	err     error             // when set, every query fails
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{titles: map[string]string{}}
}

func (f *fakeResultStore) Create(ctx context.Context, result *models.AssessmentResult) error {
	if f.err != nil {
		return f.err
	}
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeResultStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, res := range f.results {
		if res.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeResultStore) FindByUserAsc(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var results []models.AssessmentResult
	for _, res := range f.results {
		if res.UserID == userID {
			results = append(results, res)
		}
	}
	return results, nil
}

func (f *fakeResultStore) FindByUserAndAssessmentAsc(ctx context.Context, userID, assessmentID string) ([]models.AssessmentResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var results []models.AssessmentResult
	for _, res := range f.results {
		if res.UserID == userID && res.AssessmentID == assessmentID {
			results = append(results, res)
		}
	}
	return results, nil
}

func (f *fakeResultStore) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.AssessmentResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	asc, _ := f.FindByUserAsc(ctx, userID)
	var recent []models.AssessmentResult
	for i := len(asc) - 1; i >= 0 && int64(len(recent)) < limit; i-- {
		recent = append(recent, asc[i])
	}
	return recent, nil
}

func (f *fakeResultStore) SkillProgress(ctx context.Context, userID string, limit int64) ([]models.SkillProgress, error) {
	if f.err != nil {
		return nil, f.err
	}
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, res := range f.results {
		if res.UserID != userID {
			continue
		}
		title := f.titles[res.AssessmentID]
		sums[title] += res.Score
		counts[title]++
	}
	var progress []models.SkillProgress
	for title, sum := range sums {
		progress = append(progress, models.SkillProgress{
			Name:  title,
			Score: sum / float64(counts[title]),
		})
	}
	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Score > progress[j].Score
	})
	if int64(len(progress)) > limit {
		progress = progress[:limit]
	}
	return progress, nil
}
