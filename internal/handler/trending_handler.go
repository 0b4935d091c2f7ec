package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/gin-gonic/gin"
)

const trendingLimit = 5

type TrendingStore interface {
	Trending(limit int) ([]model.SearchHistory, error)
}

type TrendingHandler struct {
	repository TrendingStore
}

func NewTrendingHandler(repository TrendingStore) *TrendingHandler {
	return &TrendingHandler{repository: repository}
}

// GetTrending serves the most-searched keywords.
func (h *TrendingHandler) GetTrending(c *gin.Context) {
	trending, err := h.repository.Trending(trendingLimit)
	if err != nil {
		slog.Error("error fetching trending keywords", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	keywords := make([]TrendingKeywordResponse, 0, len(trending))
	for _, t := range trending {
		keywords = append(keywords, TrendingKeywordResponse{
			Keyword:      t.Keyword,
			Count:        t.Count,
			LastSearched: t.LastSearched.Format(time.DateTime),
		})
	}

	c.JSON(http.StatusOK, TrendingResponse{Keywords: keywords})
}
