package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"vgs-buy-tracker/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const historyCacheTTL = 15 * time.Minute

// BarProvider is the live price feed.
type BarProvider interface {
	FetchDailyBars(ctx context.Context, symbol string, from, to time.Time) ([]domain.Bar, error)
}

// BarStore is the Postgres backup of previously fetched bars.
type BarStore interface {
	UpsertBars(ctx context.Context, bars []domain.Bar) error
	GetBarsInRange(ctx context.Context, symbol string, from, to time.Time) ([]domain.Bar, error)
}

// SyntheticGenerator produces a deterministic stand-in series when no real
// data can be had.
type SyntheticGenerator func(symbol string, end time.Time, days int) []domain.Bar

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// HistoryService loads the trailing daily history for the tracked symbol.
// Resolution order: Redis cache, live feed, stale Postgres bars, synthetic
// fallback. The cache is an optimization only; a hit and a miss produce the
// same series for the same date range.
type HistoryService struct {
	tracer    trace.Tracer
	provider  BarProvider
	repo      BarStore
	redis     RedisClient
	fallback  SyntheticGenerator
	symbol    string
	lookback  int
	now       func() time.Time
}

func NewHistoryService(
	tracer trace.Tracer,
	provider BarProvider,
	repo BarStore,
	redisClient RedisClient,
	fallback SyntheticGenerator,
	symbol string,
	lookbackDays int,
) *HistoryService {
	return &HistoryService{
		tracer:   tracer,
		provider: provider,
		repo:     repo,
		redis:    redisClient,
		fallback: fallback,
		symbol:   symbol,
		lookback: lookbackDays,
		now:      time.Now,
	}
}

// GetHistory returns the raw series for the fixed trailing window ending
// today. When every real source fails and no fallback is configured, the
// error wraps domain.ErrDataUnavailable.
func (s *HistoryService) GetHistory(ctx context.Context) (domain.History, error) {
	ctx, span := s.tracer.Start(ctx, "history-service.get-history")
	defer span.End()

	to := s.now().UTC()
	from := to.AddDate(0, 0, -s.lookback)
	key := fmt.Sprintf("history:%s:%s:%s", s.symbol, from.Format("2006-01-02"), to.Format("2006-01-02"))

	if s.redis != nil {
		if cached, err := s.getCache(ctx, key); err != nil {
			log.Printf("history cache read error: %v", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	hist, err := s.loadFresh(ctx, from, to)
	if err != nil {
		return domain.History{}, err
	}

	if s.redis != nil {
		if err := s.setCache(ctx, key, hist); err != nil {
			log.Printf("history cache write error: %v", err)
		}
	}
	return hist, nil
}

// RefreshBars fetches the live series and stores it in Postgres. Used by the
// background poller so the stale-data fallback stays reasonably fresh.
func (s *HistoryService) RefreshBars(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "history-service.refresh-bars")
	defer span.End()

	to := s.now().UTC()
	from := to.AddDate(0, 0, -s.lookback)

	bars, err := s.provider.FetchDailyBars(ctx, s.symbol, from, to)
	if err != nil {
		return err
	}
	if s.repo == nil {
		return nil
	}
	if err := s.repo.UpsertBars(ctx, bars); err != nil {
		return fmt.Errorf("upsert bars for %s: %w", s.symbol, err)
	}
	log.Printf("Refreshed %d bars for %s", len(bars), s.symbol)
	return nil
}

func (s *HistoryService) loadFresh(ctx context.Context, from, to time.Time) (domain.History, error) {
	bars, err := s.provider.FetchDailyBars(ctx, s.symbol, from, to)
	if err == nil && len(bars) > 0 {
		if s.repo != nil {
			if err := s.repo.UpsertBars(ctx, bars); err != nil {
				log.Printf("bar upsert error: %v", err)
			}
		}
		return domain.History{Symbol: s.symbol, Bars: bars, FetchedAt: s.now().UTC()}, nil
	}
	log.Printf("live fetch failed for %s: %v", s.symbol, err)

	if s.repo != nil {
		stale, repoErr := s.repo.GetBarsInRange(ctx, s.symbol, from, to)
		if repoErr != nil {
			log.Printf("stale bar read error: %v", repoErr)
		} else if len(stale) > 0 {
			log.Printf("serving %d stale bars for %s", len(stale), s.symbol)
			return domain.History{Symbol: s.symbol, Bars: stale, FetchedAt: s.now().UTC()}, nil
		}
	}

	if s.fallback != nil {
		log.Printf("substituting synthetic series for %s", s.symbol)
		return domain.History{
			Symbol:    s.symbol,
			Bars:      s.fallback(s.symbol, to, s.lookback),
			Synthetic: true,
			FetchedAt: s.now().UTC(),
		}, nil
	}

	return domain.History{}, fmt.Errorf("load history for %s: %w", s.symbol, domain.ErrDataUnavailable)
}

func (s *HistoryService) setCache(ctx context.Context, key string, hist domain.History) error {
	data, err := json.Marshal(hist)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key, data, historyCacheTTL).Err()
}

func (s *HistoryService) getCache(ctx context.Context, key string) (*domain.History, error) {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var hist domain.History
	if err := json.Unmarshal(data, &hist); err != nil {
		return nil, err
	}
	return &hist, nil
}
