package period

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	for _, valid := range []string{"1day", "1week", "1month"} {
		g, err := Parse(valid)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", valid, err)
		}
		if string(g) != valid {
			t.Errorf("Parse(%q) = %q", valid, g)
		}
	}

	if _, err := Parse("1year"); !errors.Is(err, ErrInvalidGranularity) {
		t.Errorf("Parse(\"1year\") error = %v, want ErrInvalidGranularity", err)
	}
}

func TestParseOrDefault(t *testing.T) {
	if g := ParseOrDefault("1week"); g != Week {
		t.Errorf("ParseOrDefault(\"1week\") = %q", g)
	}
	if g := ParseOrDefault("garbage"); g != Day {
		t.Errorf("ParseOrDefault(\"garbage\") = %q, want Day", g)
	}
	if g := ParseOrDefault(""); g != Day {
		t.Errorf("ParseOrDefault(\"\") = %q, want Day", g)
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		g         Granularity
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "day is the anchor itself",
			anchor:    date(2024, time.November, 6),
			g:         Day,
			wantStart: date(2024, time.November, 6),
			wantEnd:   date(2024, time.November, 6),
		},
		{
			name:      "week aligns a Wednesday to Monday",
			anchor:    date(2024, time.November, 6),
			g:         Week,
			wantStart: date(2024, time.November, 4),
			wantEnd:   date(2024, time.November, 10),
		},
		{
			name:      "week keeps a Monday anchor",
			anchor:    date(2024, time.November, 4),
			g:         Week,
			wantStart: date(2024, time.November, 4),
			wantEnd:   date(2024, time.November, 10),
		},
		{
			name:      "week aligns a Sunday back six days",
			anchor:    date(2024, time.November, 10),
			g:         Week,
			wantStart: date(2024, time.November, 4),
			wantEnd:   date(2024, time.November, 10),
		},
		{
			name:      "month covers the full calendar month",
			anchor:    date(2024, time.December, 15),
			g:         Month,
			wantStart: date(2024, time.December, 1),
			wantEnd:   date(2024, time.December, 31),
		},
		{
			name:      "month handles leap February",
			anchor:    date(2024, time.February, 10),
			g:         Month,
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "month handles December year rollover",
			anchor:    date(2023, time.December, 31),
			g:         Month,
			wantStart: date(2023, time.December, 1),
			wantEnd:   date(2023, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := Range(tt.anchor, tt.g)
			if err != nil {
				t.Fatalf("Range returned error: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestRangeInvalidGranularity(t *testing.T) {
	_, _, err := Range(date(2024, time.November, 6), Granularity("1year"))
	if !errors.Is(err, ErrInvalidGranularity) {
		t.Errorf("error = %v, want ErrInvalidGranularity", err)
	}
}

func TestRangeDropsTimeOfDay(t *testing.T) {
	anchor := time.Date(2024, time.November, 6, 17, 30, 12, 0, time.UTC)
	start, end, err := Range(anchor, Day)
	if err != nil {
		t.Fatalf("Range returned error: %v", err)
	}
	want := date(2024, time.November, 6)
	if !start.Equal(want) || !end.Equal(want) {
		t.Errorf("Range = (%v, %v), want (%v, %v)", start, end, want, want)
	}
}
