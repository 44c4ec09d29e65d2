// internal/database/feedback_repository.go
package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zensupply/backend/internal/models"
)

type FeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{coll: db.Collection(models.CollectionFeedbacks)}
}

func (r *FeedbackRepository) Insert(ctx context.Context, feedback *models.Feedback) error {
	if feedback.ID.IsZero() {
		feedback.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, feedback); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) FindRecent(ctx context.Context, minRating, limit int) ([]models.Feedback, error) {
	filter := bson.M{"rating": bson.M{"$gte": minRating}}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	feedbacks, err := findAll[models.Feedback](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return feedbacks, nil
}
