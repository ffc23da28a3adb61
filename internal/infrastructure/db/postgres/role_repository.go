package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

// RoleRepository implements ports.RoleRepository using PostgreSQL.
type RoleRepository struct {
	db DBTX
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(db DBTX) ports.RoleRepository {
	return &RoleRepository{db: db}
}

// Seed inserts the fixed role set. Existing names are left untouched, so
// running it on every start is harmless.
func (r *RoleRepository) Seed(ctx context.Context) error {
	const q = `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	for _, name := range domain.SeedRoles {
		if _, err := r.db.Exec(ctx, q, name); err != nil {
			return translate("seed roles", err)
		}
	}
	return nil
}

// Resolve maps an exact role name to its id.
func (r *RoleRepository) Resolve(ctx context.Context, name string) (domain.RoleID, error) {
	var id domain.RoleID
	err := r.db.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInvalidRole
		}
		return 0, translate("resolve role", err)
	}
	return id, nil
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, translate("list roles", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, translate("list roles", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list roles", err)
	}
	return roles, nil
}
