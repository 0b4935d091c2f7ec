// The precompute worker warms the daily hover-summary cache on a
// schedule so the first hover over a recent chart bucket does not wait
// on an LLM call.
package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DMF-1TEAM/Issue-beat/db"
	"github.com/DMF-1TEAM/Issue-beat/internal/period"
	"github.com/DMF-1TEAM/Issue-beat/internal/repository"
	"github.com/DMF-1TEAM/Issue-beat/internal/summarizer"
	"github.com/DMF-1TEAM/Issue-beat/pkg/llm"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	articleRepo := repository.NewArticleRepository(db.DB)
	summaryRepo := repository.NewSummaryRepository(db.DB)
	service := summarizer.NewService(articleRepo, summaryRepo, llm.FromEnv())

	schedule := os.Getenv("PRECOMPUTE_SCHEDULE")
	if schedule == "" {
		schedule = "0 5 * * *"
	}

	days := 3
	if raw := os.Getenv("PRECOMPUTE_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	c := cron.New()
	_, err = c.AddFunc(schedule, func() {
		warmRecentDays(service, days)
	})
	if err != nil {
		log.Fatalf("invalid schedule %q: %v", schedule, err)
	}

	slog.Info("precompute worker started", "schedule", schedule, "days", days)

	// Warm once at startup, then follow the schedule.
	warmRecentDays(service, days)
	c.Run()
}

func warmRecentDays(service *summarizer.Service, days int) {
	now := time.Now()
	var warmed, skipped, failed int

	for i := 1; i <= days; i++ {
		date := now.AddDate(0, 0, -i)

		result, err := service.DailySummary(date, "", period.Day)
		if err != nil {
			slog.Error("error precomputing daily summary", "date", date.Format("2006-01-02"), "error", err)
			failed++
			continue
		}

		switch {
		case result.Cached:
			skipped++
		case result.Status == summarizer.StatusOK:
			warmed++
		default:
			failed++
		}
	}

	slog.Info("precompute pass complete", "warmed", warmed, "already_cached", skipped, "failed", failed)
}
