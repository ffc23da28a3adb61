package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

const selectAccountView = `
SELECT u.id, u.full_name, u.email, u.phone, u.created_at, r.name
FROM users u
JOIN roles r ON u.role_id = r.id`

// AccountRepository implements ports.AccountRepository using PostgreSQL.
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db DBTX) ports.AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts the account and returns its new id.
func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) (int64, error) {
	const q = `
INSERT INTO users (role_id, full_name, email, password_hash, phone)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q, a.RoleID, a.FullName, a.Email, a.PasswordHash, a.Phone).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return 0, translate("insert user", err)
	}
	return a.ID, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.AccountView, error) {
	row := r.db.QueryRow(ctx, selectAccountView+` WHERE u.id = $1`, id)

	view, err := scanAccountView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, translate("get user", err)
	}
	return view, nil
}

// List returns every account ordered by id ascending.
func (r *AccountRepository) List(ctx context.Context) ([]domain.AccountView, error) {
	rows, err := r.db.Query(ctx, selectAccountView+` ORDER BY u.id`)
	if err != nil {
		return nil, translate("list users", err)
	}
	defer rows.Close()

	views := make([]domain.AccountView, 0)
	for rows.Next() {
		view, err := scanAccountView(rows)
		if err != nil {
			return nil, translate("list users", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list users", err)
	}
	return views, nil
}

// Update writes only the columns present in c and returns the affected row
// count, which is zero for an unknown id.
func (r *AccountRepository) Update(ctx context.Context, id int64, c domain.AccountChanges) (int64, error) {
	q, args := buildUpdate(id, c)
	if q == "" {
		return 0, domain.ErrNoUpdatableFields
	}

	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return 0, translate("update user", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, translate("delete user", err)
	}
	return tag.RowsAffected(), nil
}

// buildUpdate renders the UPDATE statement with columns in a fixed order:
// role_id, password_hash, full_name, email, phone.
func buildUpdate(id int64, c domain.AccountChanges) (string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if c.RoleID != nil {
		add("role_id", *c.RoleID)
	}
	if c.PasswordHash != nil {
		add("password_hash", *c.PasswordHash)
	}
	if c.FullName != nil {
		add("full_name", *c.FullName)
	}
	if c.Email != nil {
		add("email", *c.Email)
	}
	if c.Phone != nil {
		add("phone", *c.Phone)
	}
	if len(sets) == 0 {
		return "", nil
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return q, args
}

func scanAccountView(row pgx.Row) (*domain.AccountView, error) {
	var v domain.AccountView
	if err := row.Scan(&v.ID, &v.FullName, &v.Email, &v.Phone, &v.CreatedAt, &v.Role); err != nil {
		return nil, err
	}
	return &v, nil
}
