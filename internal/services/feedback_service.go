// internal/services/feedback_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zensupply/backend/internal/models"
	"github.com/zensupply/backend/internal/utils"
)

// FeedbackStore persists feedback. Insert assigns feedback.ID; FindRecent returns
// ratings >= minRating, newest first, at most limit documents.
type FeedbackStore interface {
	Insert(ctx context.Context, feedback *models.Feedback) error
	FindRecent(ctx context.Context, minRating, limit int) ([]models.Feedback, error)
}

type FeedbackService struct {
	store FeedbackStore
	now   func() time.Time
}

type CreateFeedbackRequest struct {
	Rating            int     `json:"rating" validate:"required,min=1,max=5"`
	Comment           *string `json:"comment,omitempty"`
	MinecraftUsername *string `json:"minecraft_username,omitempty"`
}

type CreateFeedbackResponse struct {
	FeedbackID string `json:"feedback_id"`
	Status     string `json:"status"`
}

func NewFeedbackService(store FeedbackStore) *FeedbackService {
	return &FeedbackService{
		store: store,
		now:   time.Now,
	}
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, req *CreateFeedbackRequest) (*models.Feedback, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	feedback := &models.Feedback{
		Rating:            req.Rating,
		Comment:           req.Comment,
		MinecraftUsername: req.MinecraftUsername,
		CreatedAt:         s.now().UTC(),
	}

	if err := s.store.Insert(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	return feedback, nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context, params utils.FeedbackQueryParams) ([]models.FeedbackView, error) {
	if s.store == nil {
		return []models.FeedbackView{}, nil
	}

	minRating := utils.Clamp(params.MinRating, utils.MinRating, utils.MaxRating)
	limit := utils.Clamp(params.Limit, 1, utils.MaxFeedbackLimit)

	feedbacks, err := s.store.FindRecent(ctx, minRating, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	views := make([]models.FeedbackView, 0, len(feedbacks))
	for _, f := range feedbacks {
		if len(views) == limit {
			break
		}
		views = append(views, f.View())
	}
	return views, nil
}
