package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

// ProfileRepository implements ports.ProfileRepository using PostgreSQL.
type ProfileRepository struct {
	db DBTX
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db DBTX) ports.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreatePlayer(ctx context.Context, p *domain.PlayerProfile) error {
	const q = `
INSERT INTO players (user_id, position, height_cm, weight_kg, nationality, dob, bio)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q, p.UserID, p.Position, p.HeightCm, p.WeightKg, p.Nationality, p.DOB, p.Bio).
		Scan(&p.ID, &p.CreatedAt)
	return translate("insert player", err)
}

func (r *ProfileRepository) FindPlayerByUserID(ctx context.Context, userID int64) (*domain.PlayerProfile, error) {
	const q = `
SELECT id, user_id, position, height_cm, weight_kg, nationality, dob, bio, created_at
FROM players WHERE user_id = $1`

	var p domain.PlayerProfile
	err := r.db.QueryRow(ctx, q, userID).Scan(
		&p.ID, &p.UserID, &p.Position, &p.HeightCm, &p.WeightKg,
		&p.Nationality, &p.DOB, &p.Bio, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, translate("get player", err)
	}
	return &p, nil
}

func (r *ProfileRepository) DeletePlayer(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM players WHERE user_id = $1`, userID)
	if err != nil {
		return 0, translate("delete player", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ProfileRepository) CreateAgent(ctx context.Context, p *domain.AgentProfile) error {
	const q = `
INSERT INTO agents (user_id, agency_name, license_number, region)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q, p.UserID, p.AgencyName, p.LicenseNumber, p.Region).
		Scan(&p.ID, &p.CreatedAt)
	return translate("insert agent", err)
}

func (r *ProfileRepository) FindAgentByUserID(ctx context.Context, userID int64) (*domain.AgentProfile, error) {
	const q = `
SELECT id, user_id, agency_name, license_number, region, created_at
FROM agents WHERE user_id = $1`

	var p domain.AgentProfile
	err := r.db.QueryRow(ctx, q, userID).Scan(
		&p.ID, &p.UserID, &p.AgencyName, &p.LicenseNumber, &p.Region, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, translate("get agent", err)
	}
	return &p, nil
}

func (r *ProfileRepository) DeleteAgent(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM agents WHERE user_id = $1`, userID)
	if err != nil {
		return 0, translate("delete agent", err)
	}
	return tag.RowsAffected(), nil
}
