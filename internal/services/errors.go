// internal/services/errors.go
package services

import "errors"

var (
	ErrNoItems          = errors.New("no items in order")
	ErrStoreUnavailable = errors.New("database not available")
)
