package ports

import (
	"context"
	"time"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

// PlayerProfileInput holds the optional player profile fields.
type PlayerProfileInput struct {
	Position    *string
	HeightCm    *int
	WeightKg    *int
	Nationality *string
	DOB         *time.Time
	Bio         *string
}

// AgentProfileInput holds the optional agent profile fields.
type AgentProfileInput struct {
	AgencyName    *string
	LicenseNumber *string
	Region        *string
}

// CreateClubInput carries a new club.
type CreateClubInput struct {
	Name          string
	Country       *string
	ManagerUserID *int64
}

// ProfileService manages profile extensions. Profiles are never created
// implicitly and the owning account's role is not checked.
type ProfileService interface {
	CreatePlayerProfile(ctx context.Context, userID int64, input PlayerProfileInput) (*domain.PlayerProfile, error)
	GetPlayerProfile(ctx context.Context, userID int64) (*domain.PlayerProfile, error)
	DeletePlayerProfile(ctx context.Context, userID int64) (int64, error)

	CreateAgentProfile(ctx context.Context, userID int64, input AgentProfileInput) (*domain.AgentProfile, error)
	GetAgentProfile(ctx context.Context, userID int64) (*domain.AgentProfile, error)
	DeleteAgentProfile(ctx context.Context, userID int64) (int64, error)
}

// ClubService manages clubs.
type ClubService interface {
	CreateClub(ctx context.Context, input CreateClubInput) (*domain.Club, error)
	GetClub(ctx context.Context, id int64) (*domain.Club, error)
	ListClubs(ctx context.Context) ([]domain.Club, error)
	DeleteClub(ctx context.Context, id int64) (int64, error)
}
