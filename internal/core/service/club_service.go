package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

type ClubService struct {
	repo   ports.ClubRepository
	logger zerolog.Logger
}

func NewClubService(repo ports.ClubRepository, logger zerolog.Logger) *ClubService {
	return &ClubService{repo: repo, logger: logger}
}

// CreateClub inserts a club. An unknown manager account yields
// domain.ErrAccountNotFound.
func (s *ClubService) CreateClub(ctx context.Context, in ports.CreateClubInput) (*domain.Club, error) {
	if in.Name == "" {
		return nil, domain.ErrMissingFields
	}

	c := &domain.Club{
		Name:          in.Name,
		Country:       nonEmpty(in.Country),
		ManagerUserID: in.ManagerUserID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create club: %w", err)
	}

	s.logger.Info().Int64("club_id", c.ID).Str("name", c.Name).Msg("club created")
	return c, nil
}

func (s *ClubService) GetClub(ctx context.Context, id int64) (*domain.Club, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}
	return c, nil
}

func (s *ClubService) ListClubs(ctx context.Context) ([]domain.Club, error) {
	clubs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return clubs, nil
}

func (s *ClubService) DeleteClub(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete club: %w", err)
	}
	return n, nil
}
