package ports

import (
	"context"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

// CreateAccountInput carries a new account request from the transport layer.
type CreateAccountInput struct {
	FullName string
	Email    string
	Role     string
	Password string
	Phone    *string

	// IdempotencyKey, when set, makes a repeated create return the first id.
	IdempotencyKey string
	RequestID      string
}

// UpdateAccountInput is a partial update. Nil or empty fields are ignored.
type UpdateAccountInput struct {
	FullName *string
	Email    *string
	Phone    *string
	Password *string
	Role     *string

	RequestID string
}

// AccountService defines account use cases.
type AccountService interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (int64, error)
	GetAccount(ctx context.Context, id int64) (*domain.AccountView, error)
	ListAccounts(ctx context.Context) ([]domain.AccountView, error)
	UpdateAccount(ctx context.Context, id int64, input UpdateAccountInput) (int64, error)
	DeleteAccount(ctx context.Context, id int64, requestID string) (int64, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}
