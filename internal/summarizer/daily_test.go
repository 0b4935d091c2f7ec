package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/DMF-1TEAM/Issue-beat/internal/period"
)

func TestDailySummaryGeneratesAndCaches(t *testing.T) {
	a := articleOn(2024, time.November, 1, "a")
	a.Keyword = "election, vote"
	b := articleOn(2024, time.November, 1, "b")
	b.Keyword = "vote, turnout"
	b.Image = "https://example.com/b.jpg"

	store := &fakeArticleStore{articles: []model.Article{a, b}}
	cache := newFakeCache()
	oracle := okOracle()
	svc := NewService(store, cache, oracle)

	d := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.DailySummary(d, "", period.Day)
	if err != nil {
		t.Fatalf("DailySummary returned error: %v", err)
	}

	if result.Status != StatusOK || result.Cached {
		t.Errorf("result = %+v, want fresh ok result", result)
	}
	if result.TitleSummary != "topic" || result.ContentSummary != "situation" {
		t.Errorf("unexpected summary lines: %+v", result)
	}
	if result.NewsCount != 2 {
		t.Errorf("news count = %d, want 2", result.NewsCount)
	}
	if result.Image != "https://example.com/b.jpg" {
		t.Errorf("image = %q, want first non-empty image", result.Image)
	}

	want := []string{"election", "vote", "turnout"}
	if len(oracle.lastKeywords) != len(want) {
		t.Fatalf("keywords = %v, want %v", oracle.lastKeywords, want)
	}
	for i := range want {
		if oracle.lastKeywords[i] != want[i] {
			t.Errorf("keywords = %v, want %v", oracle.lastKeywords, want)
			break
		}
	}

	if len(cache.dailies) != 1 {
		t.Errorf("cache rows = %d, want 1", len(cache.dailies))
	}
}

func TestDailySummarySecondCallHitsCache(t *testing.T) {
	a := articleOn(2024, time.November, 1, "a")
	a.Keyword = "election"

	store := &fakeArticleStore{articles: []model.Article{a}}
	oracle := okOracle()
	svc := NewService(store, newFakeCache(), oracle)

	d := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.DailySummary(d, "", period.Day); err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.DailySummary(d, "", period.Day)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if !second.Cached {
		t.Error("second call should be served from cache")
	}
	if oracle.keywordCalls != 1 {
		t.Errorf("oracle called %d times, want 1", oracle.keywordCalls)
	}
}

func TestDailySummaryEmptyBucketNotCached(t *testing.T) {
	store := &fakeArticleStore{}
	cache := newFakeCache()
	svc := NewService(store, cache, okOracle())

	d := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.DailySummary(d, "", period.Day)
	if err != nil {
		t.Fatalf("DailySummary returned error: %v", err)
	}

	if result.Status != StatusNoData || result.NewsCount != 0 {
		t.Errorf("result = %+v, want no_data with zero count", result)
	}
	if len(cache.dailies) != 0 {
		t.Error("empty buckets must not be cached")
	}
}

func TestDailySummaryOracleFailureNotCached(t *testing.T) {
	a := articleOn(2024, time.November, 1, "a")
	a.Keyword = "election"

	store := &fakeArticleStore{articles: []model.Article{a}}
	cache := newFakeCache()
	svc := NewService(store, cache, &fakeOracle{err: errors.New("timeout")})

	d := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.DailySummary(d, "", period.Day)
	if err != nil {
		t.Fatalf("oracle failure must not surface as an error, got: %v", err)
	}

	if result.Status != StatusFailed {
		t.Errorf("status = %q, want failed", result.Status)
	}
	if result.NewsCount != 1 {
		t.Errorf("failed result should still carry the count, got %d", result.NewsCount)
	}
	if len(cache.dailies) != 0 {
		t.Error("failures must not be cached")
	}
}

func TestDailySummaryNoKeywordsSkipsOracle(t *testing.T) {
	store := &fakeArticleStore{articles: []model.Article{articleOn(2024, time.November, 1, "a")}}
	cache := newFakeCache()
	oracle := okOracle()
	svc := NewService(store, cache, oracle)

	d := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.DailySummary(d, "", period.Day)
	if err != nil {
		t.Fatalf("DailySummary returned error: %v", err)
	}

	if oracle.keywordCalls != 0 {
		t.Error("oracle must not be called when articles carry no keywords")
	}
	if result.Status != StatusOK {
		t.Errorf("status = %q, want ok", result.Status)
	}
	if len(cache.dailies) != 1 {
		t.Error("keywordless buckets still get a cached row")
	}
}

func TestDailySummaryWeekBucketKeyedByMonday(t *testing.T) {
	a := articleOn(2024, time.November, 6, "a")
	a.Keyword = "election"

	store := &fakeArticleStore{articles: []model.Article{a}}
	cache := newFakeCache()
	svc := NewService(store, cache, okOracle())

	wed := time.Date(2024, time.November, 6, 0, 0, 0, 0, time.UTC)
	result, err := svc.DailySummary(wed, "", period.Week)
	if err != nil {
		t.Fatalf("DailySummary returned error: %v", err)
	}

	monday := time.Date(2024, time.November, 4, 0, 0, 0, 0, time.UTC)
	if !result.Date.Equal(monday) {
		t.Errorf("result date = %v, want week start %v", result.Date, monday)
	}
	if cache.dailies[dailyKey(monday, nil, "1week")] == nil {
		t.Errorf("cache should key week buckets by Monday, rows: %v", cache.dailies)
	}
}

func TestQuickSummaryGeneratesWithDateRange(t *testing.T) {
	store := &fakeArticleStore{articles: []model.Article{
		articleOn(2024, time.November, 4, "newest"),
		articleOn(2024, time.November, 1, "oldest"),
	}}
	cache := newFakeCache()
	svc := NewService(store, cache, okOracle())

	result, err := svc.QuickSummary("election")
	if err != nil {
		t.Fatalf("QuickSummary returned error: %v", err)
	}

	if result.Status != StatusOK || result.Cached {
		t.Errorf("result = %+v, want fresh ok result", result)
	}
	if result.Summary != "one sentence" {
		t.Errorf("summary = %q", result.Summary)
	}
	if result.DateRange != "2024-11-01~2024-11-04" {
		t.Errorf("date range = %q, want 2024-11-01~2024-11-04", result.DateRange)
	}
	if result.NewsCount != 2 {
		t.Errorf("news count = %d, want 2", result.NewsCount)
	}
	if cache.quick["election"] == nil {
		t.Error("quick summary should be stored")
	}
}

func TestQuickSummaryServedFromCache(t *testing.T) {
	store := &fakeArticleStore{articles: []model.Article{articleOn(2024, time.November, 1, "a")}}
	oracle := okOracle()
	svc := NewService(store, newFakeCache(), oracle)

	if _, err := svc.QuickSummary("election"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.QuickSummary("election")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if !second.Cached {
		t.Error("second call should be served from cache")
	}
	if oracle.quickCalls != 1 {
		t.Errorf("oracle called %d times, want 1", oracle.quickCalls)
	}
}

func TestQuickSummaryEmptyAndFailedNotStored(t *testing.T) {
	cache := newFakeCache()
	svc := NewService(&fakeArticleStore{}, cache, okOracle())

	result, err := svc.QuickSummary("nothing")
	if err != nil {
		t.Fatalf("QuickSummary returned error: %v", err)
	}
	if result.Status != StatusNoData {
		t.Errorf("status = %q, want no_data", result.Status)
	}

	store := &fakeArticleStore{articles: []model.Article{articleOn(2024, time.November, 1, "a")}}
	svc = NewService(store, cache, &fakeOracle{err: errors.New("timeout")})

	result, err = svc.QuickSummary("election")
	if err != nil {
		t.Fatalf("oracle failure must not surface as an error, got: %v", err)
	}
	if result.Status != StatusFailed {
		t.Errorf("status = %q, want failed", result.Status)
	}

	if len(cache.quick) != 0 {
		t.Error("no-data and failed quick summaries must not be stored")
	}
}
