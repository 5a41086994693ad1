package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Lang resolves the display language for the request: the lang query
// parameter wins, then the Accept-Language header. Anything that is not
// Arabic falls back to English.
func Lang(c *fiber.Ctx) string {
	if lang := c.Query("lang"); lang != "" {
		if strings.EqualFold(lang, "ar") {
			return "ar"
		}
		return "en"
	}
	if strings.HasPrefix(strings.ToLower(c.Get("Accept-Language")), "ar") {
		return "ar"
	}
	return "en"
}
