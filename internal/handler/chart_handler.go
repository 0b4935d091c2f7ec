package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/hotcache"
	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/DMF-1TEAM/Issue-beat/internal/period"
	"github.com/DMF-1TEAM/Issue-beat/internal/timeline"
	"github.com/gin-gonic/gin"
)

type ChartArticleStore interface {
	Search(keyword string, from, to *time.Time) ([]model.Article, error)
}

type ChartHandler struct {
	repository ChartArticleStore
	cache      *hotcache.Service
}

func NewChartHandler(repository ChartArticleStore, cache *hotcache.Service) *ChartHandler {
	return &ChartHandler{repository: repository, cache: cache}
}

// GetChart serves the date-bucketed article count series for the line
// chart. An unknown group_by falls back to daily buckets; a keyword with
// no matches yields an empty series, not an error.
func (h *ChartHandler) GetChart(c *gin.Context) {
	query := c.Query("query")
	groupBy := period.ParseOrDefault(c.Query("group_by"))

	key := hotcache.ChartKey(query, string(groupBy))
	var series []timeline.Bucket
	if h.cache.Get(c.Request.Context(), key, &series) {
		c.JSON(http.StatusOK, series)
		return
	}

	articles, err := h.repository.Search(query, nil, nil)
	if err != nil {
		slog.Error("error searching articles for chart", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if len(articles) == 0 {
		c.JSON(http.StatusOK, []timeline.Bucket{})
		return
	}

	series, err = timeline.Aggregate(articles, groupBy)
	if err != nil {
		slog.Error("error aggregating chart series", "query", query, "group_by", groupBy, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Aggregation error"})
		return
	}

	h.cache.Set(c.Request.Context(), key, series, hotcache.ChartTTL)

	c.JSON(http.StatusOK, series)
}
