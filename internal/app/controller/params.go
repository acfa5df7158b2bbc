package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxListLimit = 100

// queryLimit reads ?limit=. Missing means 0 (no limit); anything that is not a
// non-negative integer is reported as invalid. Values above maxListLimit are clamped.
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, false
	}
	return min(limit, maxListLimit), true
}
