package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/hotcache"
	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/gin-gonic/gin"
)

const minSuggestionChars = 2

type NewsStore interface {
	SearchPage(keyword string, date *time.Time, page, pageSize int) ([]model.Article, error)
	CountSearch(keyword string, date *time.Time) (int, error)
	SuggestTitles(prefix string, limit int) ([]string, error)
}

type SearchRecorder interface {
	RecordSearch(keyword string) error
}

type NewsHandler struct {
	repository NewsStore
	history    SearchRecorder
	cache      *hotcache.Service
}

func NewNewsHandler(repository NewsStore, history SearchRecorder, cache *hotcache.Service) *NewsHandler {
	return &NewsHandler{repository: repository, history: history, cache: cache}
}

// GetNews serves the paginated news list, optionally restricted to a
// single publish date. Non-empty searches bump the trending counter; a
// counter failure is logged and never fails the request.
func (h *NewsHandler) GetNews(c *gin.Context) {
	query := c.Query("query")
	page := getQueryPage(c)
	pageSize := getQueryPageSize(c)

	date, ok := getQueryDate("date", c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		return
	}

	if query != "" {
		if err := h.history.RecordSearch(query); err != nil {
			slog.Warn("error recording search history", "query", query, "error", err)
		}
	}

	key := hotcache.NewsPageKey(query, c.Query("date"), page, pageSize)
	var cached NewsListResponse
	if h.cache.Get(c.Request.Context(), key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	total, err := h.repository.CountSearch(query, date)
	if err != nil {
		slog.Error("error counting news", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	articles, err := h.repository.SearchPage(query, date, page, pageSize)
	if err != nil {
		slog.Error("error fetching news page", "query", query, "page", page, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]NewsItemResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, NewsItemResponse{
			ID:      a.ID,
			Title:   a.Title,
			Content: a.Content,
			Press:   a.Press,
			Date:    a.Date.Format(dateLayout),
			Link:    a.Link,
			Image:   a.Image,
		})
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	res := NewsListResponse{
		NewsList:    items,
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}

	h.cache.Set(c.Request.Context(), key, res, hotcache.NewsPageTTL)

	c.JSON(http.StatusOK, res)
}

// GetSuggestions serves autocomplete titles. Queries shorter than two
// characters return an empty list without touching the database.
func (h *NewsHandler) GetSuggestions(c *gin.Context) {
	query := c.Query("query")
	if len(query) < minSuggestionChars {
		c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: []string{}})
		return
	}

	titles, err := h.repository.SuggestTitles(query, 5)
	if err != nil {
		slog.Error("error fetching suggestions", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if titles == nil {
		titles = []string{}
	}

	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: titles})
}

// GetHealth reports service and database health.
func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.CountSearch("", nil)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
