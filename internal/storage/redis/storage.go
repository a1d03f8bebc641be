package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/yahtzee-go/internal/model"
	"github.com/mcoot/yahtzee-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	seq, err := s.client.Incr(ctx, summarySeqKey()).Result()
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, summaryKey(summary.ID), data, s.cfg.SummaryTTL)
	pipe.ZAdd(ctx, summariesIndexKey(), redis.Z{
		Score:  indexScore(summary.CompletedAt, seq),
		Member: string(summary.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

// indexScore orders by completion millisecond, then by save sequence within
// the same millisecond. Stays below 2^53 so float64 holds it exactly.
func indexScore(completedAt time.Time, seq int64) float64 {
	return float64(completedAt.UnixMilli()*seqPerMilli + seq%seqPerMilli)
}

func (s *Storage) GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	data, err := s.client.Get(ctx, summaryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSummaryNotFound
		}
		return nil, err
	}

	var summary model.GameSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Storage) ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	summaries := []*model.GameSummary{}
	var start int64
	for {
		stop := int64(-1)
		if limit > 0 {
			stop = start + int64(limit-len(summaries)) - 1
		}

		ids, err := s.client.ZRevRange(ctx, summariesIndexKey(), start, stop).Result()
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return summaries, nil
		}

		live, expired, err := s.loadSummaries(ctx, ids)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, live...)

		if len(expired) == 0 {
			return summaries, nil
		}
		// Summary expired, drop the dangling index entries and fill the gap from further down
		if err := s.client.ZRem(ctx, summariesIndexKey(), expired...).Err(); err != nil {
			return nil, err
		}
		if limit <= 0 || len(summaries) >= limit {
			return summaries, nil
		}
		start += int64(len(live))
	}
}

// loadSummaries fetches the summaries for ids, returning the IDs whose values have expired
func (s *Storage) loadSummaries(ctx context.Context, ids []string) ([]*model.GameSummary, []any, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = summaryKey(model.GameID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]*model.GameSummary, 0, len(values))
	var expired []any
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			expired = append(expired, ids[i])
			continue
		}
		var summary model.GameSummary
		if err := json.Unmarshal([]byte(str), &summary); err != nil {
			return nil, nil, err
		}
		summaries = append(summaries, &summary)
	}
	return summaries, expired, nil
}

func (s *Storage) DeleteSummary(ctx context.Context, id model.GameID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, summaryKey(id))
	pipe.ZRem(ctx, summariesIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}
