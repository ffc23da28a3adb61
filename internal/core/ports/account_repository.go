package ports

import (
	"context"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

// RoleRepository is the role registry. It is read-only after Seed.
type RoleRepository interface {
	// Seed inserts the fixed role set. Running it again is a no-op.
	Seed(ctx context.Context) error
	// Resolve maps an exact role name to its id, or returns domain.ErrInvalidRole.
	Resolve(ctx context.Context, name string) (domain.RoleID, error)
	List(ctx context.Context) ([]domain.Role, error)
}

// AccountRepository persists accounts. Uniqueness and referential rules are
// enforced by the store and reported as domain errors.
type AccountRepository interface {
	// Create inserts the account and returns its new id. A taken email
	// yields domain.ErrDuplicateEmail.
	Create(ctx context.Context, account *domain.Account) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.AccountView, error)
	// List returns every account ordered by id ascending.
	List(ctx context.Context) ([]domain.AccountView, error)
	// Update writes only the non-nil columns and returns the rows changed.
	Update(ctx context.Context, id int64, changes domain.AccountChanges) (int64, error)
	// Delete removes the account and returns the rows deleted (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
}
