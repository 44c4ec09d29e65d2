// internal/services/order_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zensupply/backend/internal/models"
)

// OrderStore persists orders. Insert assigns order.ID.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
}

type OrderService struct {
	store OrderStore
	now   func() time.Time
}

type CreateOrderRequest struct {
	MinecraftUsername string             `json:"minecraft_username" validate:"required,notblank"`
	Discord           *string            `json:"discord,omitempty"`
	Email             *string            `json:"email,omitempty"`
	Items             []models.OrderItem `json:"items" validate:"required,dive"`
	Notes             *string            `json:"notes,omitempty"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{
		store: store,
		now:   time.Now,
	}
}

// CalculateTotal sums price × quantity over items and rounds to cents, half away
// from zero. Client prices are taken as submitted.
func CalculateTotal(items []models.OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64()
}

func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	order := &models.Order{
		MinecraftUsername: req.MinecraftUsername,
		Discord:           req.Discord,
		Email:             req.Email,
		Items:             req.Items,
		TotalAmount:       CalculateTotal(req.Items),
		Status:            models.OrderStatusPending,
		Notes:             req.Notes,
		CreatedAt:         s.now().UTC(),
	}

	if err := s.store.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
