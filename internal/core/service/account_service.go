package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
	"github.com/footballagentsl/accounts-api/internal/pkg/metrics"
)

// settleTimeout bounds the idempotency write that follows a create.
const settleTimeout = 2 * time.Second

// AccountService implements account provisioning and maintenance.
type AccountService struct {
	roles  ports.RoleRepository
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	idem   ports.IdempotencyStore // optional
	audit  ports.AuditRecorder    // optional
	logger zerolog.Logger
}

// AccountOption configures optional collaborators of AccountService.
type AccountOption func(*AccountService)

// WithIdempotencyStore enables Idempotency-Key replay on CreateAccount.
func WithIdempotencyStore(store ports.IdempotencyStore) AccountOption {
	return func(s *AccountService) { s.idem = store }
}

// WithAuditRecorder sends committed mutations to the audit trail.
func WithAuditRecorder(rec ports.AuditRecorder) AccountOption {
	return func(s *AccountService) { s.audit = rec }
}

func NewAccountService(
	roles ports.RoleRepository,
	repo ports.AccountRepository,
	hasher ports.PasswordHasher,
	logger zerolog.Logger,
	opts ...AccountOption,
) *AccountService {
	s := &AccountService{roles: roles, repo: repo, hasher: hasher, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAccount resolves the role, hashes the password and inserts the row,
// in that order, stopping at the first failure. With an idempotency key the
// key is claimed before any of that and settled afterwards.
func (s *AccountService) CreateAccount(ctx context.Context, in ports.CreateAccountInput) (id int64, err error) {
	if in.FullName == "" || in.Email == "" || in.Role == "" || in.Password == "" {
		return 0, s.fail("create", domain.ErrMissingFields)
	}

	fingerprint := requestFingerprint(in)
	owned, replayID, err := s.claim(ctx, in.IdempotencyKey, fingerprint)
	if err != nil {
		return 0, s.fail("create", err)
	}
	if replayID != 0 {
		return replayID, nil
	}
	if owned {
		defer func() { s.settle(ctx, in.IdempotencyKey, fingerprint, id, err) }()
	}

	roleID, err := s.roles.Resolve(ctx, in.Role)
	if err != nil {
		return 0, s.fail("create", err)
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return 0, s.fail("create", err)
	}

	id, err = s.repo.Create(ctx, &domain.Account{
		FullName:     in.FullName,
		Email:        in.Email,
		RoleID:       roleID,
		PasswordHash: hash,
		Phone:        nonEmpty(in.Phone),
	})
	if err != nil {
		return 0, s.fail("create", err)
	}

	metrics.AccountsCreatedTotal.WithLabelValues(in.Role).Inc()
	s.logger.Info().Int64("account_id", id).Str("role", in.Role).Msg("account created")
	s.record(domain.AccountEvent{
		AccountID: id,
		Action:    domain.ActionAccountCreated,
		Email:     in.Email,
		Role:      in.Role,
		RequestID: in.RequestID,
	})

	return id, nil
}

// claim reserves key for this request. It returns owned when the caller must
// settle the key, or the id of an earlier request to replay. Store outages are
// logged and the request proceeds without a key.
func (s *AccountService) claim(ctx context.Context, key, fingerprint string) (owned bool, replayID int64, err error) {
	if key == "" || s.idem == nil {
		return false, 0, nil
	}

	c, err := s.idem.Claim(ctx, key, fingerprint)
	switch {
	case errors.Is(err, domain.ErrIdempotencyInProgress):
		metrics.IdempotencyClaimsTotal.WithLabelValues("in_progress").Inc()
		return false, 0, err
	case errors.Is(err, domain.ErrIdempotencyKeyReused):
		metrics.IdempotencyClaimsTotal.WithLabelValues("key_reused").Inc()
		return false, 0, err
	case err != nil:
		metrics.IdempotencyClaimsTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency claim failed, creating without key")
		return false, 0, nil
	case c.Owned:
		metrics.IdempotencyClaimsTotal.WithLabelValues("miss").Inc()
		return true, 0, nil
	default:
		metrics.IdempotencyClaimsTotal.WithLabelValues("hit").Inc()
		s.logger.Info().Str("idempotency_key", key).Int64("account_id", c.ID).Msg("idempotent replay")
		return false, c.ID, nil
	}
}

// settle records the created id under an owned key, or releases the key when
// the create failed so the client can retry. It runs after the request
// context may have expired.
func (s *AccountService) settle(ctx context.Context, key, fingerprint string, id int64, createErr error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()

	if createErr == nil {
		if err := s.idem.Complete(ctx, key, fingerprint, id); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Int64("account_id", id).Msg("failed to store idempotency key")
		}
		return
	}
	if err := s.idem.Release(ctx, key, fingerprint); err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to release idempotency key")
	}
}

// requestFingerprint identifies a create request body. The password is left
// out so nothing derived from it is kept next to the key.
func requestFingerprint(in ports.CreateAccountInput) string {
	var phone string
	if in.Phone != nil {
		phone = *in.Phone
	}

	h := sha256.New()
	for _, part := range []string{in.FullName, in.Email, in.Role, phone} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// GetAccount returns the account projection, never including the password hash.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*domain.AccountView, error) {
	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", err)
	}
	return view, nil
}

// ListAccounts returns all accounts ordered by id ascending.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.AccountView, error) {
	views, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail("list", err)
	}
	return views, nil
}

// UpdateAccount applies a partial update and returns the number of rows the
// store changed. Zero rows for an unknown id is not an error.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, in ports.UpdateAccountInput) (int64, error) {
	var changes domain.AccountChanges

	if role := nonEmpty(in.Role); role != nil {
		roleID, err := s.roles.Resolve(ctx, *role)
		if err != nil {
			return 0, s.fail("update", err)
		}
		changes.RoleID = &roleID
	}
	if password := nonEmpty(in.Password); password != nil {
		hash, err := s.hasher.Hash(ctx, *password)
		if err != nil {
			return 0, s.fail("update", err)
		}
		changes.PasswordHash = &hash
	}
	changes.FullName = nonEmpty(in.FullName)
	changes.Email = nonEmpty(in.Email)
	changes.Phone = nonEmpty(in.Phone)

	if changes.IsEmpty() {
		return 0, s.fail("update", domain.ErrNoUpdatableFields)
	}

	n, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return 0, s.fail("update", err)
	}

	if n > 0 {
		s.logger.Info().Int64("account_id", id).Strs("fields", changes.Fields()).Msg("account updated")
		s.record(domain.AccountEvent{
			AccountID: id,
			Action:    domain.ActionAccountUpdated,
			Fields:    changes.Fields(),
			RequestID: in.RequestID,
		})
	}
	return n, nil
}

// DeleteAccount removes the account; owned profiles go with it and clubs it
// managed lose their manager.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64, requestID string) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, s.fail("delete", err)
	}

	if n > 0 {
		s.logger.Info().Int64("account_id", id).Msg("account deleted")
		s.record(domain.AccountEvent{
			AccountID: id,
			Action:    domain.ActionAccountDeleted,
			RequestID: requestID,
		})
	}
	return n, nil
}

func (s *AccountService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *AccountService) record(event domain.AccountEvent) {
	if s.audit == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	s.audit.Record(event)
}

// fail counts and logs err, then returns it annotated with the operation.
func (s *AccountService) fail(op string, err error) error {
	reason := failureReason(err)
	metrics.AccountOperationErrorsTotal.WithLabelValues(op, reason).Inc()

	if reason == "store_failure" || reason == "hash_failure" {
		s.logger.Error().Err(err).Str("operation", op).Msg("account operation failed")
	}
	return fmt.Errorf("%s account: %w", op, err)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, domain.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, domain.ErrInvalidRole):
		return "invalid_role"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "duplicate_email"
	case errors.Is(err, domain.ErrNoUpdatableFields):
		return "no_updatable_fields"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrIdempotencyInProgress):
		return "idempotency_in_progress"
	case errors.Is(err, domain.ErrIdempotencyKeyReused):
		return "idempotency_key_reused"
	case errors.Is(err, domain.ErrHashFailure):
		return "hash_failure"
	default:
		return "store_failure"
	}
}

// nonEmpty treats an empty string the same as an absent field.
func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
