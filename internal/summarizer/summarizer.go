// Package summarizer orchestrates the summary pipeline: resolve the
// search period, check the database cache, pick representative articles,
// call the LLM and persist the result. The database unique constraint is
// the only synchronization between concurrent requests for the same key.
package summarizer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/DMF-1TEAM/Issue-beat/internal/period"
	"github.com/DMF-1TEAM/Issue-beat/internal/repository"
	"github.com/DMF-1TEAM/Issue-beat/pkg/llm"
)

// maxOracleArticles caps how many articles are sent to the LLM.
// Search returns newest first, so this keeps the 10 most recent.
const maxOracleArticles = 10

// Status distinguishes a real summary from the two fallback shapes, so
// callers never have to string-match placeholder text.
type Status string

const (
	StatusOK     Status = "ok"
	StatusNoData Status = "no_data"
	StatusFailed Status = "failed"
)

const (
	noDataText = "No matching news articles were found."
	failedText = "Summary generation failed. Please try again."
)

type ArticleStore interface {
	Search(keyword string, from, to *time.Time) ([]model.Article, error)
}

type SummaryCache interface {
	GetSummary(keyword string, date *time.Time, groupBy string) (*model.NewsSummary, error)
	SaveSummary(*model.NewsSummary) error
	GetDailySummary(date time.Time, query *string, groupBy string) (*model.DailySummary, error)
	SaveDailySummary(*model.DailySummary) error
	GetQuickSummary(keyword string) (*model.QuickSummary, error)
	UpsertQuickSummary(*model.QuickSummary) error
}

type Service struct {
	articles ArticleStore
	cache    SummaryCache
	oracle   llm.Oracle
}

func NewService(articles ArticleStore, cache SummaryCache, oracle llm.Oracle) *Service {
	return &Service{articles: articles, cache: cache, oracle: oracle}
}

// Result is a three-part summary. Cached reports whether it was served
// from a previously stored row.
type Result struct {
	Background  string
	CoreContent string
	Conclusion  string
	Status      Status
	Cached      bool
}

// Summarize produces the three-part summary for a keyword. With a
// selected date the period containing it (at granularity g) is
// summarized and the result cached under the period start; without one
// the whole dataset is summarized under a nil period key.
//
// Only data-access failures return an error. An empty article set or a
// failed oracle call comes back as a Result tagged no_data or failed,
// and neither is ever cached.
func (s *Service) Summarize(keyword string, g period.Granularity, selectedDate *time.Time) (*Result, error) {
	var periodKey, from, to *time.Time
	isOverall := selectedDate == nil

	if selectedDate != nil {
		start, end, err := period.Range(*selectedDate, g)
		if err != nil {
			return nil, err
		}
		periodKey, from, to = &start, &start, &end
	}

	cached, err := s.cache.GetSummary(keyword, periodKey, string(g))
	if err != nil {
		return nil, fmt.Errorf("summary cache lookup: %w", err)
	}
	if cached != nil {
		return resultFromRow(cached, true), nil
	}

	articles, err := s.articles.Search(keyword, from, to)
	if err != nil {
		return nil, fmt.Errorf("article search: %w", err)
	}
	if len(articles) == 0 {
		return &Result{
			Background:  noDataText,
			CoreContent: noDataText,
			Conclusion:  noDataText,
			Status:      StatusNoData,
		}, nil
	}

	generated, err := s.oracle.StructuredSummary(oracleInputs(articles), keyword, isOverall)
	if err != nil {
		slog.Error("structured summary generation failed", "keyword", keyword, "group_by", g, "error", err)
		return &Result{
			Background:  failedText,
			CoreContent: failedText,
			Conclusion:  failedText,
			Status:      StatusFailed,
		}, nil
	}

	row := &model.NewsSummary{
		Keyword:     keyword,
		Date:        periodKey,
		GroupBy:     string(g),
		Background:  generated.Background,
		CoreContent: generated.CoreContent,
		Conclusion:  generated.Conclusion,
	}

	switch err := s.cache.SaveSummary(row); err {
	case nil:
		return resultFromRow(row, false), nil
	case repository.ErrDuplicateSummary:
		// Another request won the race. Their row is the canonical one.
		stored, err := s.cache.GetSummary(keyword, periodKey, string(g))
		if err != nil {
			return nil, fmt.Errorf("summary cache re-fetch: %w", err)
		}
		if stored != nil {
			return resultFromRow(stored, true), nil
		}
		return resultFromRow(row, false), nil
	default:
		return nil, fmt.Errorf("summary cache store: %w", err)
	}
}

func resultFromRow(row *model.NewsSummary, cached bool) *Result {
	return &Result{
		Background:  row.Background,
		CoreContent: row.CoreContent,
		Conclusion:  row.Conclusion,
		Status:      StatusOK,
		Cached:      cached,
	}
}

// oracleInputs selects at most maxOracleArticles from the newest-first
// search result.
func oracleInputs(articles []model.Article) []llm.ArticleInput {
	if len(articles) > maxOracleArticles {
		articles = articles[:maxOracleArticles]
	}
	inputs := make([]llm.ArticleInput, len(articles))
	for i, a := range articles {
		inputs[i] = llm.ArticleInput{Title: a.Title, Content: a.Content}
	}
	return inputs
}
