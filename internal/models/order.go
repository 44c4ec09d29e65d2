// internal/models/order.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MinecraftUsername string             `json:"minecraft_username" bson:"minecraft_username"`
	Discord           *string            `json:"discord" bson:"discord"`
	Email             *string            `json:"email" bson:"email"`
	Items             []OrderItem        `json:"items" bson:"items"`
	TotalAmount       float64            `json:"total_amount" bson:"total_amount"`
	Status            OrderStatus        `json:"status" bson:"status"`
	Notes             *string            `json:"notes" bson:"notes"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}

// OrderItem is a snapshot of the chosen product at checkout time. The price is the
// one the client submitted.
type OrderItem struct {
	ProductID    string  `json:"product_id" bson:"product_id" validate:"required"`
	Name         string  `json:"name" bson:"name" validate:"required"`
	Price        float64 `json:"price" bson:"price"`
	Quantity     int     `json:"quantity" bson:"quantity" validate:"min=1"`
	VariantID    *string `json:"variant_id,omitempty" bson:"variant_id,omitempty"`
	VariantLabel *string `json:"variant_label,omitempty" bson:"variant_label,omitempty"`
}
