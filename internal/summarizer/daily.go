package summarizer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/DMF-1TEAM/Issue-beat/internal/period"
	"github.com/DMF-1TEAM/Issue-beat/internal/repository"
)

const (
	noKeywordsTitle   = "No keywords"
	noKeywordsContent = "The articles in this period carry no keywords."
	noDataTitle       = "No data"
	noDataContent     = "No articles were published in this period."
	dailyFailedTitle  = "Summary unavailable"
	dailyFailedText   = "Summary generation failed."
)

// DailyResult is the chart-hover payload for one bucket.
type DailyResult struct {
	Date           time.Time
	TitleSummary   string
	ContentSummary string
	NewsCount      int
	Image          string
	Status         Status
	Cached         bool
}

// DailySummary produces the two-line hover summary for the bucket that
// contains date at granularity g, optionally restricted to a search
// keyword. Cached under the bucket start, write-once. Empty buckets and
// oracle failures return fallback results that are not cached, so the
// bucket gets a real summary once articles or the oracle are available.
func (s *Service) DailySummary(date time.Time, keyword string, g period.Granularity) (*DailyResult, error) {
	start, end, err := period.Range(date, g)
	if err != nil {
		return nil, err
	}

	var queryKey *string
	if keyword != "" {
		queryKey = &keyword
	}

	cached, err := s.cache.GetDailySummary(start, queryKey, string(g))
	if err != nil {
		return nil, fmt.Errorf("daily summary lookup: %w", err)
	}
	if cached != nil {
		return dailyFromRow(cached, true), nil
	}

	articles, err := s.articles.Search(keyword, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("article search: %w", err)
	}
	if len(articles) == 0 {
		return &DailyResult{
			Date:           start,
			TitleSummary:   noDataTitle,
			ContentSummary: noDataContent,
			Status:         StatusNoData,
		}, nil
	}

	row := &model.DailySummary{
		Date:      start,
		Query:     queryKey,
		GroupBy:   string(g),
		NewsCount: len(articles),
		Image:     firstImage(articles),
	}

	keywords := collectKeywords(articles)
	if len(keywords) == 0 {
		// Articles without keywords still get a cached row so the
		// bucket is not re-queried on every hover.
		row.TitleSummary = noKeywordsTitle
		row.ContentSummary = noKeywordsContent
	} else {
		generated, err := s.oracle.KeywordSummary(keywords)
		if err != nil {
			slog.Error("daily summary generation failed", "date", start.Format("2006-01-02"), "keyword", keyword, "error", err)
			return &DailyResult{
				Date:           start,
				TitleSummary:   dailyFailedTitle,
				ContentSummary: dailyFailedText,
				NewsCount:      len(articles),
				Image:          row.Image,
				Status:         StatusFailed,
			}, nil
		}
		row.TitleSummary = generated.TitleSummary
		row.ContentSummary = generated.ContentSummary
	}

	switch err := s.cache.SaveDailySummary(row); err {
	case nil:
		return dailyFromRow(row, false), nil
	case repository.ErrDuplicateSummary:
		stored, err := s.cache.GetDailySummary(start, queryKey, string(g))
		if err != nil {
			return nil, fmt.Errorf("daily summary re-fetch: %w", err)
		}
		if stored != nil {
			return dailyFromRow(stored, true), nil
		}
		return dailyFromRow(row, false), nil
	default:
		return nil, fmt.Errorf("daily summary store: %w", err)
	}
}

func dailyFromRow(row *model.DailySummary, cached bool) *DailyResult {
	return &DailyResult{
		Date:           row.Date,
		TitleSummary:   row.TitleSummary,
		ContentSummary: row.ContentSummary,
		NewsCount:      row.NewsCount,
		Image:          row.Image,
		Status:         StatusOK,
		Cached:         cached,
	}
}

// collectKeywords dedupes keywords across the bucket's articles,
// keeping first-seen order.
func collectKeywords(articles []model.Article) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, a := range articles {
		for _, k := range a.Keywords() {
			if !seen[k] {
				seen[k] = true
				keywords = append(keywords, k)
			}
		}
	}
	return keywords
}

func firstImage(articles []model.Article) string {
	for _, a := range articles {
		if a.Image != "" {
			return a.Image
		}
	}
	return ""
}
