package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/period"
	"github.com/DMF-1TEAM/Issue-beat/internal/summarizer"
	"github.com/gin-gonic/gin"
)

type SummaryService interface {
	Summarize(keyword string, g period.Granularity, selectedDate *time.Time) (*summarizer.Result, error)
	DailySummary(date time.Time, keyword string, g period.Granularity) (*summarizer.DailyResult, error)
	QuickSummary(keyword string) (*summarizer.QuickResult, error)
}

type SummaryHandler struct {
	service SummaryService
}

func NewSummaryHandler(service SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// GetSummary serves the three-part summary. With a date parameter the
// summary covers the period containing that date at the requested
// granularity; without one it covers the whole dataset.
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	query := c.Query("query")
	groupBy := period.ParseOrDefault(c.Query("group_by"))

	date, ok := getQueryDate("date", c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		return
	}

	result, err := h.service.Summarize(query, groupBy, date)
	if err != nil {
		slog.Error("error generating summary", "query", query, "group_by", groupBy, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Background:  result.Background,
		CoreContent: result.CoreContent,
		Conclusion:  result.Conclusion,
		Status:      string(result.Status),
		Cached:      result.Cached,
	})
}

// GetHoverSummary serves the two-line bucket summary shown when the user
// hovers a chart point.
func (h *SummaryHandler) GetHoverSummary(c *gin.Context) {
	raw := c.Param("date")
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		slog.Warn("invalid hover date", "date", raw, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		return
	}

	query := c.Query("query")
	groupBy := period.ParseOrDefault(c.Query("group_by"))

	result, err := h.service.DailySummary(date, query, groupBy)
	if err != nil {
		slog.Error("error generating hover summary", "date", raw, "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, HoverSummaryResponse{
		Date:           result.Date.Format(dateLayout),
		TitleSummary:   result.TitleSummary,
		ContentSummary: result.ContentSummary,
		NewsCount:      result.NewsCount,
		ImageURL:       result.Image,
		Status:         string(result.Status),
		Cached:         result.Cached,
	})
}

// GetQuickSummary serves the one-sentence keyword digest.
func (h *SummaryHandler) GetQuickSummary(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter"})
		return
	}

	result, err := h.service.QuickSummary(query)
	if err != nil {
		slog.Error("error generating quick summary", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, QuickSummaryResponse{
		Keyword:   result.Keyword,
		Summary:   result.Summary,
		NewsCount: result.NewsCount,
		DateRange: result.DateRange,
		Status:    string(result.Status),
		Cached:    result.Cached,
	})
}
