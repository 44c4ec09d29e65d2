// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyBackendReady = "backend.running"

	// Orders
	KeyOrderNoItems  = "order.no_items"
	KeyOrderInFlight = "order.in_flight"

	// Store
	KeyDatabaseUnavailable = "database.unavailable"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
