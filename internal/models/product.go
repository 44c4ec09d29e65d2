// internal/models/product.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Title is the business key; ID is assigned by the store
// and only ever exposed as its hex string.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Image       *string            `json:"image" bson:"image"`
	Badge       *string            `json:"badge" bson:"badge"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
	Variants    []Variant          `json:"variants,omitempty" bson:"variants,omitempty"`
}

// Variant is an alternative purchase configuration of the same product,
// e.g. a single unit or a bulk bundle at a different per-unit rate.
type Variant struct {
	ID          string   `json:"id" bson:"id"`
	Label       string   `json:"label" bson:"label"`
	UnitPrice   *float64 `json:"unit_price,omitempty" bson:"unit_price,omitempty"`
	BundleQty   *int     `json:"bundle_qty,omitempty" bson:"bundle_qty,omitempty"`
	BundlePrice *float64 `json:"bundle_price,omitempty" bson:"bundle_price,omitempty"`
}
