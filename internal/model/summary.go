package model

import "time"

// NewsSummary is a cached three-part summary, one row per
// (keyword, date, group_by). Date is nil for overall summaries.
// Rows are write-once: never updated or deleted after creation.
type NewsSummary struct {
	ID          int64
	Keyword     string
	Date        *time.Time
	GroupBy     string
	Background  string
	CoreContent string
	Conclusion  string
	CreatedAt   time.Time
}

// DailySummary is the chart-hover variant: a two-line summary of one
// bucket plus its article count and a representative image. Query is nil
// when the summary covers all articles of the bucket. Write-once, keyed
// by (date, query, group_by).
type DailySummary struct {
	ID             int64
	Date           time.Time
	Query          *string
	GroupBy        string
	TitleSummary   string
	ContentSummary string
	NewsCount      int
	Image          string
	CreatedAt      time.Time
}

// QuickSummary is a one-sentence keyword summary over the keyword's full
// date range. Unlike the other caches it is refreshed in place.
type QuickSummary struct {
	ID        int64
	Keyword   string
	Summary   string
	NewsCount int
	DateRange string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SearchHistory counts how often a keyword has been searched.
type SearchHistory struct {
	ID           int64
	Keyword      string
	Count        int
	LastSearched time.Time
}
