package handler

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	raw := c.Query(name)

	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", raw, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryPage(c *gin.Context) int {
	page := getQueryInt("page", 1, c)
	if page < 1 {
		slog.Warn("invalid query parameter, using default", "param", "page", "value", page, "default", 1)
		return 1
	}
	return page
}

func getQueryPageSize(c *gin.Context) int {
	const (
		defaultPageSize = 10
		maxPageSize     = 100
	)

	pageSize := getQueryInt("page_size", defaultPageSize, c)
	if pageSize < 1 {
		slog.Warn("invalid query parameter, using default", "param", "page_size", "value", pageSize, "default", defaultPageSize)
		return defaultPageSize
	}

	if pageSize > maxPageSize {
		slog.Warn("query parameter exceeds max, clamping", "param", "page_size", "value", pageSize, "max", maxPageSize)
		return maxPageSize
	}

	return pageSize
}

// getQueryDate parses an optional date parameter. ok is false when the
// parameter is present but not a valid YYYY-MM-DD date.
func getQueryDate(name string, c *gin.Context) (date *time.Time, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		slog.Warn("invalid date parameter", "param", name, "value", raw, "error", err)
		return nil, false
	}

	return &parsed, true
}
