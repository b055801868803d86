package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not a number. Range clamping happens in the store
// adapters.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
