package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

const selectClub = `SELECT id, name, country, manager_user_id, created_at FROM clubs`

// ClubRepository implements ports.ClubRepository using PostgreSQL.
type ClubRepository struct {
	db DBTX
}

// NewClubRepository creates a new ClubRepository.
func NewClubRepository(db DBTX) ports.ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Create(ctx context.Context, c *domain.Club) error {
	const q = `
INSERT INTO clubs (name, country, manager_user_id)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q, c.Name, c.Country, c.ManagerUserID).Scan(&c.ID, &c.CreatedAt)
	return translate("insert club", err)
}

func (r *ClubRepository) FindByID(ctx context.Context, id int64) (*domain.Club, error) {
	c, err := scanClub(r.db.QueryRow(ctx, selectClub+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, translate("get club", err)
	}
	return c, nil
}

func (r *ClubRepository) List(ctx context.Context) ([]domain.Club, error) {
	rows, err := r.db.Query(ctx, selectClub+` ORDER BY id`)
	if err != nil {
		return nil, translate("list clubs", err)
	}
	defer rows.Close()

	clubs := make([]domain.Club, 0)
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, translate("list clubs", err)
		}
		clubs = append(clubs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("list clubs", err)
	}
	return clubs, nil
}

func (r *ClubRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return 0, translate("delete club", err)
	}
	return tag.RowsAffected(), nil
}

func scanClub(row pgx.Row) (*domain.Club, error) {
	var c domain.Club
	if err := row.Scan(&c.ID, &c.Name, &c.Country, &c.ManagerUserID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
