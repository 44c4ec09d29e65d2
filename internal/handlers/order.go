// internal/handlers/order.go
package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zensupply/backend/internal/i18n"
	"github.com/zensupply/backend/internal/models"
	"github.com/zensupply/backend/internal/services"
	"github.com/zensupply/backend/internal/utils"
	"github.com/zensupply/backend/pkg/idempotency"
)

const IdempotencyKeyHeader = "Idempotency-Key"

// idempotencySettleTimeout bounds Complete and Release, which run after the request
// deadline may already have passed.
const idempotencySettleTimeout = 2 * time.Second

// IdempotencyStore guards order creation against client retries.
type IdempotencyStore interface {
	Claim(ctx context.Context, key string) (existing string, claimed bool, err error)
	Complete(ctx context.Context, key, value string) error
	Release(ctx context.Context, key string) error
}

type OrderHandler struct {
	orderService *services.OrderService
	idempotency  IdempotencyStore
	timeout      time.Duration
}

// NewOrderHandler builds the order endpoints. idempotency may be nil.
func NewOrderHandler(orderService *services.OrderService, idempotency IdempotencyStore, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		idempotency:  idempotency,
		timeout:      timeout,
	}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if len(req.Items) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderNoItems), nil)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	key := h.claimKey(ctx, c)
	if c.IsAborted() {
		return
	}

	order, err := h.orderService.CreateOrder(ctx, &req)
	if err != nil {
		h.release(ctx, key)
		c.Error(err)
		switch {
		case errors.Is(err, services.ErrNoItems):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderNoItems), nil)
		case errors.Is(err, services.ErrStoreUnavailable):
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyDatabaseUnavailable))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	orderID := order.ID.Hex()
	h.complete(ctx, key, orderID)

	logrus.WithFields(logrus.Fields{
		"order_id":     orderID,
		"items":        len(order.Items),
		"total_amount": order.TotalAmount,
		"request_id":   utils.GetRequestIDFromContext(c),
	}).Info("Order received")

	utils.SuccessResponse(c, services.CreateOrderResponse{
		OrderID: orderID,
		Status:  models.StatusReceived,
	})
}

// claimKey reserves the request's Idempotency-Key. It answers replays itself and
// returns "" when no protection applies.
func (h *OrderHandler) claimKey(ctx context.Context, c *gin.Context) string {
	key := c.GetHeader(IdempotencyKeyHeader)
	if key == "" || h.idempotency == nil {
		return ""
	}

	existing, claimed, err := h.idempotency.Claim(ctx, key)
	if err != nil {
		logrus.WithError(err).Warn("Idempotency store unavailable, continuing without it")
		return ""
	}
	if claimed {
		return key
	}

	if idempotency.IsPending(existing) {
		utils.ConflictResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyOrderInFlight))
		c.Abort()
		return ""
	}

	utils.SuccessResponse(c, services.CreateOrderResponse{
		OrderID: existing,
		Status:  models.StatusReceived,
	})
	c.Abort()
	return ""
}

func (h *OrderHandler) complete(ctx context.Context, key, orderID string) {
	if key == "" {
		return
	}
	ctx, cancel := settleContext(ctx)
	defer cancel()

	if err := h.idempotency.Complete(ctx, key, orderID); err != nil {
		logrus.WithError(err).WithField("order_id", orderID).Warn("Failed to record idempotency key")
	}
}

func (h *OrderHandler) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	ctx, cancel := settleContext(ctx)
	defer cancel()

	if err := h.idempotency.Release(ctx, key); err != nil {
		logrus.WithError(err).Warn("Failed to release idempotency key")
	}
}

// settleContext detaches from the request deadline so a timed-out insert still
// releases its claim.
func settleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), idempotencySettleTimeout)
}
