package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

// SQLSTATE codes the repositories translate.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// constraintErrors maps named constraints to the domain error they signal.
var constraintErrors = map[string]error{
	"users_email_key":            domain.ErrDuplicateEmail,
	"users_role_id_fkey":         domain.ErrInvalidRole,
	"players_user_id_key":        domain.ErrProfileExists,
	"agents_user_id_key":         domain.ErrProfileExists,
	"players_user_id_fkey":       domain.ErrAccountNotFound,
	"agents_user_id_fkey":        domain.ErrAccountNotFound,
	"clubs_manager_user_id_fkey": domain.ErrAccountNotFound,
}

// translate turns a driver error into a domain error. Constraint violations
// the domain knows about get their sentinel; anything else becomes a
// *domain.StoreError carrying the driver message. Context errors are not
// store faults and pass through with the operation attached.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == uniqueViolation || pgErr.Code == foreignKeyViolation) {
		if target, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return target
		}
	}
	return domain.NewStoreError(op, err)
}
