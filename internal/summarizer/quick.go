package summarizer

import (
	"fmt"
	"log/slog"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/DMF-1TEAM/Issue-beat/internal/period"
)

// QuickResult is the one-sentence search summary.
type QuickResult struct {
	Keyword   string
	Summary   string
	NewsCount int
	DateRange string
	Status    Status
	Cached    bool
}

// QuickSummary produces a single-sentence digest of everything matching
// keyword, with the covered date range. Served from the quick_summary
// table when present; the upsert on generation makes a concurrent race
// harmless (last write wins, both writes describe the same articles).
func (s *Service) QuickSummary(keyword string) (*QuickResult, error) {
	cached, err := s.cache.GetQuickSummary(keyword)
	if err != nil {
		return nil, fmt.Errorf("quick summary lookup: %w", err)
	}
	if cached != nil {
		return quickFromRow(cached, true), nil
	}

	articles, err := s.articles.Search(keyword, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("article search: %w", err)
	}
	if len(articles) == 0 {
		return &QuickResult{
			Keyword: keyword,
			Summary: noDataText,
			Status:  StatusNoData,
		}, nil
	}

	sentence, err := s.oracle.QuickSummary(oracleInputs(articles), keyword)
	if err != nil {
		slog.Error("quick summary generation failed", "keyword", keyword, "error", err)
		return &QuickResult{
			Keyword:   keyword,
			Summary:   failedText,
			NewsCount: len(articles),
			Status:    StatusFailed,
		}, nil
	}

	row := &model.QuickSummary{
		Keyword:   keyword,
		Summary:   sentence,
		NewsCount: len(articles),
		DateRange: dateRange(articles),
	}
	if err := s.cache.UpsertQuickSummary(row); err != nil {
		return nil, fmt.Errorf("quick summary store: %w", err)
	}

	return quickFromRow(row, false), nil
}

func quickFromRow(row *model.QuickSummary, cached bool) *QuickResult {
	return &QuickResult{
		Keyword:   row.Keyword,
		Summary:   row.Summary,
		NewsCount: row.NewsCount,
		DateRange: row.DateRange,
		Status:    StatusOK,
		Cached:    cached,
	}
}

// dateRange formats the span of a newest-first article list as
// "YYYY-MM-DD~YYYY-MM-DD".
func dateRange(articles []model.Article) string {
	oldest := period.Truncate(articles[len(articles)-1].Date)
	newest := period.Truncate(articles[0].Date)
	return fmt.Sprintf("%s~%s", oldest.Format("2006-01-02"), newest.Format("2006-01-02"))
}
