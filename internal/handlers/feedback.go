// internal/handlers/feedback.go
package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zensupply/backend/internal/i18n"
	"github.com/zensupply/backend/internal/models"
	"github.com/zensupply/backend/internal/services"
	"github.com/zensupply/backend/internal/utils"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
	timeout         time.Duration
}

func NewFeedbackHandler(feedbackService *services.FeedbackService, timeout time.Duration) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		timeout:         timeout,
	}
}

// POST /feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	feedback, err := h.feedbackService.CreateFeedback(ctx, &req)
	if err != nil {
		c.Error(err)
		if errors.Is(err, services.ErrStoreUnavailable) {
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyDatabaseUnavailable))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, services.CreateFeedbackResponse{
		FeedbackID: feedback.ID.Hex(),
		Status:     models.StatusReceived,
	})
}

// GET /feedbacks
func (h *FeedbackHandler) GetFeedbacks(c *gin.Context) {
	params := utils.GetFeedbackQueryParams(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	feedbacks, err := h.feedbackService.ListFeedback(ctx, params)
	if err != nil {
		c.Error(err)
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.ItemsListResponse(c, feedbacks)
}
