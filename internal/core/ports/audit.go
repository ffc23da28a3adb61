package ports

import (
	"context"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

// AuditRepository persists account events to the audit collection.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AccountEvent) error
}

// AuditRecorder accepts events for asynchronous persistence. Record must not
// block the caller.
type AuditRecorder interface {
	Record(event domain.AccountEvent)
}

// IdempotencyClaim is the outcome of claiming a create request key.
type IdempotencyClaim struct {
	// Owned means the caller reserved the key and must Complete or Release it.
	Owned bool
	// ID is the account an earlier request with the same key created.
	ID int64
}

// IdempotencyStore reserves create request keys so that retries carrying the
// same key create at most one account. The fingerprint identifies the request
// body; a key is never honoured for a different body.
type IdempotencyStore interface {
	// Claim reserves key, or reports the account a finished request created.
	// It returns domain.ErrIdempotencyInProgress while another request holds
	// the key and domain.ErrIdempotencyKeyReused when the fingerprint differs.
	Claim(ctx context.Context, key, fingerprint string) (IdempotencyClaim, error)
	// Complete records the account id for an owned key.
	Complete(ctx context.Context, key, fingerprint string, id int64) error
	// Release gives up an owned key so the request can be retried.
	Release(ctx context.Context, key, fingerprint string) error
}
