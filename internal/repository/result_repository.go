package repository

import (
	"context"

	"skillsphere-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("assessment_results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.AssessmentResult) error {
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *ResultRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"user_id": userID})
}

// FindByUserAsc returns all results for a user ordered by completion time,
// oldest first.
func (r *ResultRepository) FindByUserAsc(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: 1}})
	return r.findResults(ctx, bson.M{"user_id": userID}, opts)
}

// FindByUserAndAssessmentAsc returns a user's results for one assessment
// ordered by completion time, oldest first.
func (r *ResultRepository) FindByUserAndAssessmentAsc(ctx context.Context, userID, assessmentID string) ([]models.AssessmentResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: 1}})
	return r.findResults(ctx, bson.M{"user_id": userID, "assessment_id": assessmentID}, opts)
}

// FindRecentByUser returns the most recently completed results, newest first.
func (r *ResultRepository) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.AssessmentResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "completed_at", Value: -1}}).
		SetLimit(limit)
	return r.findResults(ctx, bson.M{"user_id": userID}, opts)
}

// SkillProgress groups a user's results by their assessment's title and
// returns the top groups by average score.
func (r *ResultRepository) SkillProgress(ctx context.Context, userID string, limit int64) ([]models.SkillProgress, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "assessments",
			"localField":   "assessment_id",
			"foreignField": "_id",
			"as":           "assessment",
		}}},
		{{Key: "$unwind", Value: "$assessment"}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$assessment.title",
			"avg_score":    bson.M{"$avg": "$score"},
			"latest_score": bson.M{"$last": "$score"},
			"count":        bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"avg_score": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Title    string  `bson:"_id"`
		AvgScore float64 `bson:"avg_score"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	progress := make([]models.SkillProgress, 0, len(rows))
	for _, row := range rows {
		progress = append(progress, models.SkillProgress{
			Name:  row.Title,
			Score: row.AvgScore,
		})
	}
	return progress, nil
}

func (r *ResultRepository) findResults(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.AssessmentResult, error) {
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.AssessmentResult
	for cur.Next(ctx) {
		var res models.AssessmentResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
