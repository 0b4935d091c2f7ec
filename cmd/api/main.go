package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/DMF-1TEAM/Issue-beat/db"
	"github.com/DMF-1TEAM/Issue-beat/internal/handler"
	"github.com/DMF-1TEAM/Issue-beat/internal/hotcache"
	"github.com/DMF-1TEAM/Issue-beat/internal/repository"
	"github.com/DMF-1TEAM/Issue-beat/internal/summarizer"
	"github.com/DMF-1TEAM/Issue-beat/pkg/llm"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var cache *hotcache.Service
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("Redis unavailable, hot cache disabled", "error", err)
	} else {
		cache = hotcache.New(db.Redis)
		defer db.CloseRedis()
	}

	articleRepo := repository.NewArticleRepository(db.DB)
	summaryRepo := repository.NewSummaryRepository(db.DB)
	historyRepo := repository.NewHistoryRepository(db.DB)

	summaryService := summarizer.NewService(articleRepo, summaryRepo, llm.FromEnv())

	chartHandler := handler.NewChartHandler(articleRepo, cache)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	newsHandler := handler.NewNewsHandler(articleRepo, historyRepo, cache)
	trendingHandler := handler.NewTrendingHandler(historyRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/news", newsHandler.GetNews)
	r.GET("/api/news/chart", chartHandler.GetChart)
	r.GET("/api/news/summary", summaryHandler.GetSummary)
	r.GET("/api/news/quick-summary", summaryHandler.GetQuickSummary)
	r.GET("/api/news/hover/:date", summaryHandler.GetHoverSummary)
	r.GET("/api/trending", trendingHandler.GetTrending)
	r.GET("/api/suggestions", newsHandler.GetSuggestions)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
