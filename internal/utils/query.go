// internal/utils/query.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultMinRating = 4
	MinRating        = 1
	MaxRating        = 5

	DefaultFeedbackLimit = 100
	MaxFeedbackLimit     = 500
)

type FeedbackQueryParams struct {
	MinRating int `json:"min_rating"`
	Limit     int `json:"limit"`
}

// GetFeedbackQueryParams reads min_rating and limit, falling back to defaults on
// missing or non-numeric values and clamping the rest into range.
func GetFeedbackQueryParams(c *gin.Context) FeedbackQueryParams {
	return FeedbackQueryParams{
		MinRating: Clamp(queryInt(c, "min_rating", DefaultMinRating), MinRating, MaxRating),
		Limit:     Clamp(queryInt(c, "limit", DefaultFeedbackLimit), 1, MaxFeedbackLimit),
	}
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return defaultValue
	}
	return value
}
