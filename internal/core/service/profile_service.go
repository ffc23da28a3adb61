package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

// ProfileService manages player and agent profiles. The owning account's role
// is deliberately not compared with the profile kind.
type ProfileService struct {
	repo   ports.ProfileRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) CreatePlayerProfile(ctx context.Context, userID int64, in ports.PlayerProfileInput) (*domain.PlayerProfile, error) {
	p := &domain.PlayerProfile{
		UserID:      userID,
		Position:    nonEmpty(in.Position),
		HeightCm:    in.HeightCm,
		WeightKg:    in.WeightKg,
		Nationality: nonEmpty(in.Nationality),
		DOB:         in.DOB,
		Bio:         nonEmpty(in.Bio),
	}
	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		return nil, fmt.Errorf("create player profile: %w", err)
	}

	s.logger.Info().Int64("account_id", userID).Int64("profile_id", p.ID).Msg("player profile created")
	return p, nil
}

func (s *ProfileService) GetPlayerProfile(ctx context.Context, userID int64) (*domain.PlayerProfile, error) {
	p, err := s.repo.FindPlayerByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get player profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) DeletePlayerProfile(ctx context.Context, userID int64) (int64, error) {
	n, err := s.repo.DeletePlayer(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete player profile: %w", err)
	}
	return n, nil
}

func (s *ProfileService) CreateAgentProfile(ctx context.Context, userID int64, in ports.AgentProfileInput) (*domain.AgentProfile, error) {
	p := &domain.AgentProfile{
		UserID:        userID,
		AgencyName:    nonEmpty(in.AgencyName),
		LicenseNumber: nonEmpty(in.LicenseNumber),
		Region:        nonEmpty(in.Region),
	}
	if err := s.repo.CreateAgent(ctx, p); err != nil {
		return nil, fmt.Errorf("create agent profile: %w", err)
	}

	s.logger.Info().Int64("account_id", userID).Int64("profile_id", p.ID).Msg("agent profile created")
	return p, nil
}

func (s *ProfileService) GetAgentProfile(ctx context.Context, userID int64) (*domain.AgentProfile, error) {
	p, err := s.repo.FindAgentByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get agent profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) DeleteAgentProfile(ctx context.Context, userID int64) (int64, error) {
	n, err := s.repo.DeleteAgent(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete agent profile: %w", err)
	}
	return n, nil
}
