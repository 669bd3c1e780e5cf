package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ordertrack/internal/report"
)

const limitQuery = "limit"

// parseLimit reads the optional positive limit query parameter.
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query(limitQuery)
	if raw == "" {
		return report.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return limit, nil
}

func errorBody(err error) gin.H {
	return gin.H{"error": err.Error()}
}
