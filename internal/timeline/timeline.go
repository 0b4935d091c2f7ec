// Package timeline turns a filtered article set into a gap-free series of
// per-bucket counts for charting.
package timeline

import (
	"errors"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/internal/model"
	"github.com/DMF-1TEAM/Issue-beat/internal/period"
)

// ErrEmptyDataset is returned when there is nothing to bucket. Callers
// should short-circuit to an empty series before calling Aggregate.
var ErrEmptyDataset = errors.New("empty dataset")

type Bucket struct {
	Label string `json:"date"`
	Count int    `json:"count"`
}

// Aggregate buckets articles by calendar day, week or month, spanning the
// full [min date, max date] range of the input. Every bucket in the range
// appears in the output, zero-count buckets included. Weeks are
// Monday-aligned so chart buckets and summary cache keys agree on what a
// week is. Labels are YYYY-MM-DD for day and week, YYYY-MM for month.
func Aggregate(articles []model.Article, g period.Granularity) ([]Bucket, error) {
	if len(articles) == 0 {
		return nil, ErrEmptyDataset
	}

	minDate, maxDate := dateSpan(articles)

	bounds, err := bucketBounds(minDate, maxDate, g)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(bounds))
	for _, a := range articles {
		start, _, err := period.Range(a.Date, g)
		if err != nil {
			return nil, err
		}
		counts[label(start, g)]++
	}

	series := make([]Bucket, len(bounds))
	for i, b := range bounds {
		l := label(b, g)
		series[i] = Bucket{Label: l, Count: counts[l]}
	}
	return series, nil
}

func dateSpan(articles []model.Article) (time.Time, time.Time) {
	minDate := period.Truncate(articles[0].Date)
	maxDate := minDate
	for _, a := range articles[1:] {
		d := period.Truncate(a.Date)
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}
	return minDate, maxDate
}

// bucketBounds lists every bucket start between minDate and maxDate.
func bucketBounds(minDate, maxDate time.Time, g period.Granularity) ([]time.Time, error) {
	start, _, err := period.Range(minDate, g)
	if err != nil {
		return nil, err
	}

	var bounds []time.Time
	for cur := start; !cur.After(maxDate); {
		bounds = append(bounds, cur)
		switch g {
		case period.Day:
			cur = cur.AddDate(0, 0, 1)
		case period.Week:
			cur = cur.AddDate(0, 0, 7)
		case period.Month:
			// Day 28 + 4 days lands in the next month regardless of
			// month length; reset to the 1st.
			next := cur.AddDate(0, 0, 28-cur.Day()+4)
			cur = time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, next.Location())
		}
	}
	return bounds, nil
}

func label(bucketStart time.Time, g period.Granularity) string {
	if g == period.Month {
		return bucketStart.Format("2006-01")
	}
	return bucketStart.Format("2006-01-02")
}
