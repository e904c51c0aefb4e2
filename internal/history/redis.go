package history

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps one capped list per couple and kind
type RedisStore struct {
	client *redis.Client
	keep   int
}

// NewRedisStore creates a store that keeps the newest keep ids per list
func NewRedisStore(client *redis.Client, keep int) *RedisStore {
	if keep <= 0 {
		keep = DefaultLookback
	}
	return &RedisStore{client: client, keep: keep}
}

func historyKey(coupleID string, kind Kind) string {
	return fmt.Sprintf("history:%s:%s", coupleID, kind)
}

// Record pushes the id onto the couple's list and trims it
func (s *RedisStore) Record(ctx context.Context, coupleID string, kind Kind, itemID string) error {
	key := historyKey(coupleID, kind)

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, itemID)
	pipe.LTrim(ctx, key, 0, int64(s.keep-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// Recent returns up to limit ids, newest first
func (s *RedisStore) Recent(ctx context.Context, coupleID string, kind Kind, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := s.client.LRange(ctx, historyKey(coupleID, kind), 0, int64(limit-1)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return ids, nil
}
