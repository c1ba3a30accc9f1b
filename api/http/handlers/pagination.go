package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxLimit = 200

// parseLimit reads ?limit=, falling back to defLimit when it is missing or
// outside (0, maxLimit].
func parseLimit(c *fiber.Ctx, defLimit int) int {
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxLimit {
			return n
		}
	}
	return defLimit
}
