package repository

import (
	"context"

	"skillsphere-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("assessment_sessions")}
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.AssessmentSession, error) {
	var session models.AssessmentSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.AssessmentSession) error {
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

// MarkCompleted flips a session to completed only if it is not completed yet.
// The conditional filter makes the flip atomic, so two concurrent submits on
// the same session can never both win. Returns false when the session was
// already completed (or does not exist).
func (r *SessionRepository) MarkCompleted(ctx context.Context, id string) (bool, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "completed": false},
		bson.M{"$set": bson.M{"completed": true}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *SessionRepository) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"user_id": userID, "completed": false})
}
