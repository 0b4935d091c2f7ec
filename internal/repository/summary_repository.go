package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/lib/pq"
)

// ErrDuplicateSummary is returned when a summary row for the same cache
// key already exists. Two requests racing on an uncached key both compute
// a summary; the unique constraint lets exactly one insert win and the
// loser re-reads the stored row.
var ErrDuplicateSummary = errors.New("summary already exists for key")

type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// GetSummary looks up the cached three-part summary for
// (keyword, date, groupBy). date is nil for overall summaries.
// Returns (nil, nil) on a cache miss.
func (r *SummaryRepository) GetSummary(keyword string, date *time.Time, groupBy string) (*model.NewsSummary, error) {
	var s model.NewsSummary
	var d sql.NullTime
	err := r.db.QueryRow(`
		SELECT id, keyword, date, group_by, background, core_content, conclusion, created_at
		FROM news_summary
		WHERE keyword = $1 AND date IS NOT DISTINCT FROM $2 AND group_by = $3
	`, keyword, nullTime(date), groupBy).Scan(
		&s.ID, &s.Keyword, &d, &s.GroupBy, &s.Background, &s.CoreContent, &s.Conclusion, &s.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if d.Valid {
		s.Date = &d.Time
	}
	return &s, nil
}

// SaveSummary inserts a new cache row. The (keyword, date, group_by)
// unique constraint makes the cache write-once; a conflicting insert
// comes back as ErrDuplicateSummary.
func (r *SummaryRepository) SaveSummary(s *model.NewsSummary) error {
	err := r.db.QueryRow(`
		INSERT INTO news_summary(keyword, date, group_by, background, core_content, conclusion)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, s.Keyword, nullTime(s.Date), s.GroupBy, s.Background, s.CoreContent, s.Conclusion).Scan(&s.ID, &s.CreatedAt)

	return mapDuplicate(err)
}

// GetDailySummary looks up the chart-hover summary for
// (date, query, groupBy). query is nil for the all-articles variant.
// Returns (nil, nil) on a cache miss.
func (r *SummaryRepository) GetDailySummary(date time.Time, query *string, groupBy string) (*model.DailySummary, error) {
	var s model.DailySummary
	var q sql.NullString
	err := r.db.QueryRow(`
		SELECT id, date, query, group_by, title_summary, content_summary, news_count, representative_image, created_at
		FROM daily_summary
		WHERE date = $1 AND query IS NOT DISTINCT FROM $2 AND group_by = $3
	`, date, nullString(query), groupBy).Scan(
		&s.ID, &s.Date, &q, &s.GroupBy, &s.TitleSummary, &s.ContentSummary, &s.NewsCount, &s.Image, &s.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if q.Valid {
		s.Query = &q.String
	}
	return &s, nil
}

func (r *SummaryRepository) SaveDailySummary(s *model.DailySummary) error {
	err := r.db.QueryRow(`
		INSERT INTO daily_summary(date, query, group_by, title_summary, content_summary, news_count, representative_image)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, s.Date, nullString(s.Query), s.GroupBy, s.TitleSummary, s.ContentSummary, s.NewsCount, s.Image).Scan(&s.ID, &s.CreatedAt)

	return mapDuplicate(err)
}

// GetQuickSummary returns the one-line summary for keyword,
// or (nil, nil) when none exists yet.
func (r *SummaryRepository) GetQuickSummary(keyword string) (*model.QuickSummary, error) {
	var s model.QuickSummary
	err := r.db.QueryRow(`
		SELECT id, keyword, summary, news_count, date_range, created_at, updated_at
		FROM quick_summary
		WHERE keyword = $1
	`, keyword).Scan(&s.ID, &s.Keyword, &s.Summary, &s.NewsCount, &s.DateRange, &s.CreatedAt, &s.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

// UpsertQuickSummary writes or refreshes the one-line summary. Quick
// summaries track the keyword's full date range, so unlike the other
// caches they are replaced in place as new articles arrive.
func (r *SummaryRepository) UpsertQuickSummary(s *model.QuickSummary) error {
	return r.db.QueryRow(`
		INSERT INTO quick_summary(keyword, summary, news_count, date_range)
		VALUES($1, $2, $3, $4)
		ON CONFLICT (keyword) DO UPDATE
		SET summary = EXCLUDED.summary,
			news_count = EXCLUDED.news_count,
			date_range = EXCLUDED.date_range,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`, s.Keyword, s.Summary, s.NewsCount, s.DateRange).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func mapDuplicate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateSummary
	}
	return err
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
