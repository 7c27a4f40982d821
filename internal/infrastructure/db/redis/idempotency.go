package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eadirect/ea-catalog/internal/core/ports"
)

const (
	idempotencyTTL    = 24 * time.Hour
	idempotencyPrefix = "idempotency:"
)

// IdempotencyStore keeps responses to POST requests for replay.
// Key format: idempotency:<scope>:<Idempotency-Key header>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl selects 24h.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = idempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Get returns the stored response for key, if any.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (*ports.StoredResponse, bool, error) {
	raw, err := s.client.Get(ctx, idempotencyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("idempotency get: %w", err)
	}

	var resp ports.StoredResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false, fmt.Errorf("idempotency decode: %w", err)
	}
	return &resp, true, nil
}

// Save stores resp under key unless a response is already there (SETNX).
func (s *IdempotencyStore) Save(ctx context.Context, key string, resp ports.StoredResponse) (bool, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return false, fmt.Errorf("idempotency encode: %w", err)
	}
	ok, err := s.client.SetNX(ctx, idempotencyPrefix+key, raw, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency save: %w", err)
	}
	return ok, nil
}
