package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClaimState describes what the caller holding an idempotency key may do.
type ClaimState int

const (
	// StateClaimed means this request owns the key and should proceed.
	StateClaimed ClaimState = iota
	// StateInFlight means another request with the same key has not finished.
	StateInFlight
	// StateCompleted means a previous request finished; the stored
	// transaction id should be replayed.
	StateCompleted
)

const (
	pendingMarker = "PENDING"
	keyPrefix     = "idempotency:transaction:"
)

// Store tracks idempotency keys in redis. A key is claimed with SETNX, so two
// concurrent requests carrying the same key cannot both run the workflow, and
// a retry after a completed request replays the stored transaction instead of
// moving money twice.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

// Claim attempts to take ownership of key. When the key was already
// completed, the stored transaction id is returned.
func (s *Store) Claim(ctx context.Context, key string) (ClaimState, string, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+key, pendingMarker, s.ttl).Result()
	if err != nil {
		return 0, "", fmt.Errorf("claiming idempotency key: %w", err)
	}
	if ok {
		return StateClaimed, "", nil
	}

	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET; treat as in flight, the client
		// will retry.
		return StateInFlight, "", nil
	}
	if err != nil {
		return 0, "", fmt.Errorf("reading idempotency key: %w", err)
	}

	if val == pendingMarker {
		return StateInFlight, "", nil
	}
	return StateCompleted, val, nil
}

// Complete records the transaction id produced under key.
func (s *Store) Complete(ctx context.Context, key, transactionID string) error {
	return s.client.Set(ctx, keyPrefix+key, transactionID, s.ttl).Err()
}

// Release frees a claimed key after a failed attempt so the client can retry.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
