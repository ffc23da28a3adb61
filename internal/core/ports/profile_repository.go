package ports

import (
	"context"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

// ProfileRepository persists the per-account profile extensions.
// Create fails with domain.ErrAccountNotFound for an unknown account and
// domain.ErrProfileExists when the account already has that profile kind.
type ProfileRepository interface {
	CreatePlayer(ctx context.Context, p *domain.PlayerProfile) error
	FindPlayerByUserID(ctx context.Context, userID int64) (*domain.PlayerProfile, error)
	DeletePlayer(ctx context.Context, userID int64) (int64, error)

	CreateAgent(ctx context.Context, p *domain.AgentProfile) error
	FindAgentByUserID(ctx context.Context, userID int64) (*domain.AgentProfile, error)
	DeleteAgent(ctx context.Context, userID int64) (int64, error)
}

// ClubRepository persists clubs.
type ClubRepository interface {
	Create(ctx context.Context, c *domain.Club) error
	FindByID(ctx context.Context, id int64) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
