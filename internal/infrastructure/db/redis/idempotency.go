package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

const (
	// DefaultIdempotencyTTL is how long a finished create request is remembered.
	DefaultIdempotencyTTL = 24 * time.Hour
	// DefaultPendingTTL bounds how long a request may hold a key before it is
	// considered abandoned.
	DefaultPendingTTL = time.Minute

	pendingPrefix = "pending:"
	donePrefix    = "done:"
)

// releaseScript deletes a key only while it still holds the caller's pending
// marker.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// IdempotencyStore implements ports.IdempotencyStore backed by Redis.
// Keys are idempotency:users:<key>. The value is pending:<fingerprint> while
// the request runs and done:<fingerprint>:<account id> once it has succeeded.
type IdempotencyStore struct {
	client     *redis.Client
	ttl        time.Duration
	pendingTTL time.Duration
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis
// client. Non-positive durations select the defaults.
func NewIdempotencyStore(client *redis.Client, ttl, pendingTTL time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl, pendingTTL: pendingTTL}
}

// Claim reserves key with SETNX. When the key is taken, the stored value
// decides between replay, in progress and reuse.
func (s *IdempotencyStore) Claim(ctx context.Context, key, fingerprint string) (ports.IdempotencyClaim, error) {
	k := s.key(key)

	// A second round covers a key that expires between SETNX and GET.
	for range 2 {
		ok, err := s.client.SetNX(ctx, k, pendingPrefix+fingerprint, s.pendingTTL).Result()
		if err != nil {
			return ports.IdempotencyClaim{}, fmt.Errorf("idempotency claim: %w", err)
		}
		if ok {
			return ports.IdempotencyClaim{Owned: true}, nil
		}

		raw, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return ports.IdempotencyClaim{}, fmt.Errorf("idempotency claim: %w", err)
		}
		return decodeClaim(raw, fingerprint)
	}
	return ports.IdempotencyClaim{}, domain.ErrIdempotencyInProgress
}

// Complete stores the created account id under key for the full TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, key, fingerprint string, id int64) error {
	value := donePrefix + fingerprint + ":" + strconv.FormatInt(id, 10)
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops the caller's pending marker. A key that has since been
// completed or claimed by someone else is left alone.
func (s *IdempotencyStore) Release(ctx context.Context, key, fingerprint string) error {
	if err := releaseScript.Run(ctx, s.client, []string{s.key(key)}, pendingPrefix+fingerprint).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(key string) string {
	return "idempotency:users:" + key
}

func decodeClaim(raw, fingerprint string) (ports.IdempotencyClaim, error) {
	switch {
	case strings.HasPrefix(raw, pendingPrefix):
		if strings.TrimPrefix(raw, pendingPrefix) != fingerprint {
			return ports.IdempotencyClaim{}, domain.ErrIdempotencyKeyReused
		}
		return ports.IdempotencyClaim{}, domain.ErrIdempotencyInProgress

	case strings.HasPrefix(raw, donePrefix):
		stored, idText, ok := strings.Cut(strings.TrimPrefix(raw, donePrefix), ":")
		if !ok {
			break
		}
		if stored != fingerprint {
			return ports.IdempotencyClaim{}, domain.ErrIdempotencyKeyReused
		}
		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil {
			break
		}
		return ports.IdempotencyClaim{ID: id}, nil
	}
	return ports.IdempotencyClaim{}, fmt.Errorf("idempotency claim: corrupt value %q", raw)
}
