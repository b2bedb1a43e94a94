package statistics

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coursewave/coursewave-app/pkg/domain/model"
	article_service "github.com/coursewave/coursewave-app/pkg/service/article"
)

const (
	statsCacheKey = "coursewave:stats:articles"
	statsCacheTTL = 15 * time.Minute
)

// Service serves the dashboard statistics. Reads go through a redis
// snapshot so the aggregate queries don't run on every request; the
// snapshot is refreshed on a schedule and on cache misses.
type Service struct {
	articleSvc article_service.Service
	rdb        *redis.Client
}

func NewService(articleSvc article_service.Service, rdb *redis.Client) *Service {
	return &Service{articleSvc: articleSvc, rdb: rdb}
}

// ArticleStats returns the cached snapshot, recomputing it on a miss.
func (s *Service) ArticleStats(ctx context.Context) (*model.ArticleStats, error) {
	raw, err := s.rdb.Get(ctx, statsCacheKey).Bytes()
	if err == nil {
		var stats model.ArticleStats
		if err := json.Unmarshal(raw, &stats); err == nil {
			return &stats, nil
		}
		log.Printf("[stats] discarding corrupt snapshot: %v", err)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[stats] snapshot read failed, recomputing: %v", err)
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the snapshot and stores it.
func (s *Service) Refresh(ctx context.Context) (*model.ArticleStats, error) {
	stats, err := s.articleSvc.Stats(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return stats, nil
	}
	if err := s.rdb.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		log.Printf("[stats] storing snapshot failed: %v", err)
	}
	return stats, nil
}
