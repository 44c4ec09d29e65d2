// internal/models/common.go
package models

// Collection names
const (
	CollectionProducts  = "product"
	CollectionOrders    = "order"
	CollectionFeedbacks = "feedback"
)

// Enums
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// Acknowledgement returned by intake endpoints
const StatusReceived = "received"

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func FloatPtr(f float64) *float64 {
	return &f
}

func IntPtr(i int) *int {
	return &i
}
