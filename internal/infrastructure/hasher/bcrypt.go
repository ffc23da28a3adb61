package hasher

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/pkg/metrics"
)

// DefaultCost matches the work factor accounts have always been hashed with.
const DefaultCost = 10

// Config tunes the bcrypt hasher.
type Config struct {
	Cost           int
	MaxConcurrency int // defaults to GOMAXPROCS
}

// Bcrypt implements ports.PasswordHasher. Each hash embeds its own random salt
// so equal passwords never produce equal hashes.
type Bcrypt struct {
	cost  int
	slots *semaphore.Weighted
}

// New returns a bcrypt hasher. A cost outside bcrypt's range, including zero,
// means DefaultCost.
func New(cfg Config) *Bcrypt {
	cost := cfg.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	n := cfg.MaxConcurrency
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &Bcrypt{cost: cost, slots: semaphore.NewWeighted(int64(n))}
}

// Hash waits for a free hashing slot and returns the bcrypt hash of secret.
// Giving up on the wait returns the context error, not ErrHashFailure.
func (b *Bcrypt) Hash(ctx context.Context, secret string) (string, error) {
	start := time.Now()
	defer func() { metrics.PasswordHashDuration.Observe(time.Since(start).Seconds()) }()

	if err := b.slots.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("wait for hashing slot: %w", err)
	}
	defer b.slots.Release(1)

	out, err := bcrypt.GenerateFromPassword([]byte(secret), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashFailure, err)
	}
	return string(out), nil
}

// Verify reports whether secret matches hash.
func (b *Bcrypt) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// Cost returns the work factor new hashes are generated with.
func (b *Bcrypt) Cost() int { return b.cost }
