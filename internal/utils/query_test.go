// internal/utils/query_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/feedbacks?"+rawQuery, nil)
	return c
}

func TestGetFeedbackQueryParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		minRating int
		limit     int
	}{
		{"defaults", "", 4, 100},
		{"explicit", "min_rating=5&limit=10", 5, 10},
		{"clamped low", "min_rating=0&limit=0", 1, 1},
		{"clamped high", "min_rating=9&limit=9000", 5, 500},
		{"non numeric", "min_rating=abc&limit=xyz", 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := GetFeedbackQueryParams(contextWithQuery(tt.query))
			assert.Equal(t, tt.minRating, params.MinRating)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}
