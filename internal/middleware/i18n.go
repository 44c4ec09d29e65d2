// internal/middleware/i18n.go
package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zensupply/backend/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", parseLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// parseLanguage picks the first preference from headers like
// "zh-TW,zh;q=0.9,en;q=0.8" and maps it onto a loaded locale.
func parseLanguage(header string) string {
	if header == "" {
		return "en"
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW":
		first = "zh_TW"
	case "en", "en-US", "en-GB":
		first = "en"
	}

	if slices.Contains(i18n.GetSupportedLanguages(), first) {
		return first
	}
	return "en"
}
