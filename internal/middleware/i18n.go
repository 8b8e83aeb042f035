// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

var languageAliases = map[string]string{
	"zh-TW":   "zh_TW",
	"zh_TW":   "zh_TW",
	"zh-Hant": "zh_TW",
	"en":      "en",
	"en-US":   "en",
	"en-GB":   "en",
}

// I18nMiddleware resolves the Accept-Language header to a supported locale
// and stores it in the request context for the response helpers.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", resolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// resolveLanguage takes the first entry of an Accept-Language header, e.g.
// "zh-TW,zh;q=0.9,en;q=0.8", and maps it to a locale. Unknown languages
// fall back to English.
func resolveLanguage(header string) string {
	if header == "" {
		return "en"
	}

	first := strings.TrimSpace(strings.Split(header, ",")[0])
	first = strings.Split(first, ";")[0]

	if lang, ok := languageAliases[first]; ok {
		return lang
	}
	return "en"
}
