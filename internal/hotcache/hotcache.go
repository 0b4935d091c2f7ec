// Package hotcache is a short-TTL Redis cache in front of the chart and
// news-list queries. A cache outage degrades to a miss; it never fails
// the request.
package hotcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ChartTTL    = time.Hour
	NewsPageTTL = 30 * time.Minute
)

type Service struct {
	client *redis.Client
}

func New(client *redis.Client) *Service {
	return &Service{client: client}
}

// Get unmarshals the cached value for key into dest and reports whether
// the key was present. Redis errors are logged and treated as misses.
func (s *Service) Get(ctx context.Context, key string, dest interface{}) bool {
	if s == nil || s.client == nil {
		return false
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		slog.Warn("hot cache read failed", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		slog.Warn("hot cache entry corrupt, ignoring", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores val under key for ttl. Failures are logged and dropped.
func (s *Service) Set(ctx context.Context, key string, val interface{}, ttl time.Duration) {
	if s == nil || s.client == nil {
		return
	}

	data, err := json.Marshal(val)
	if err != nil {
		slog.Warn("hot cache marshal failed", "key", key, "error", err)
		return
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Warn("hot cache write failed", "key", key, "error", err)
	}
}

func ChartKey(keyword, groupBy string) string {
	return fmt.Sprintf("issuebeat:chart:%s:%s", keyword, groupBy)
}

func NewsPageKey(keyword, date string, page, pageSize int) string {
	return fmt.Sprintf("issuebeat:news:%s:%s:%d:%d", keyword, date, page, pageSize)
}
