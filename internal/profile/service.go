// internal/profile/service.go

package profile

import (
	"context"
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized access")

// Service defines the profile service interface
type Service interface {
	GetProfile(ctx context.Context, coupleID, partnerID string) (*Profile, error)
	GetCouple(ctx context.Context, coupleID string) (Pair, error)
	UpdateProfile(ctx context.Context, coupleID, partnerID string, req *UpdateProfileRequest) (*Profile, error)
	CreateProfile(ctx context.Context, p *Profile) (*Profile, error)
}

// service implements the profile service
type service struct {
	repo Repository
}

// NewService creates a new profile service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetProfile returns one partner's profile, scoped to the caller's couple
func (s *service) GetProfile(ctx context.Context, coupleID, partnerID string) (*Profile, error) {
	p, err := s.repo.GetProfile(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if p.CoupleID != coupleID {
		return nil, ErrUnauthorized
	}
	return p, nil
}

// GetCouple loads both partners. Fewer than two is ErrInsufficientProfileData.
func (s *service) GetCouple(ctx context.Context, coupleID string) (Pair, error) {
	profiles, err := s.repo.GetCoupleProfiles(ctx, coupleID)
	if err != nil {
		return Pair{}, err
	}
	return NewPair(profiles...)
}

// UpdateProfile applies a settings edit and persists the result
func (s *service) UpdateProfile(ctx context.Context, coupleID, partnerID string, req *UpdateProfileRequest) (*Profile, error) {
	p, err := s.GetProfile(ctx, coupleID, partnerID)
	if err != nil {
		return nil, err
	}

	req.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProfile stores a profile produced by onboarding
func (s *service) CreateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
