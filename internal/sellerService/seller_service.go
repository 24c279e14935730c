package sellers

import (
	"fmt"
	"time"

	"freelance-market/internal/marketerrors"
	"freelance-market/internal/models"
	"freelance-market/internal/repository"
	"freelance-market/utils"
)

// ProfileInput carries the caller-editable fields of a seller profile
type ProfileInput struct {
	Name        string
	Role        string
	Skill       string
	Description string
	Experience  int
	HourlyRate  float64
}

// SellerService defines the business logic for seller profiles
type SellerService struct {
	repo repository.MarketDB
}

// NewSellerService creates a new SellerService instance
func NewSellerService(repo repository.MarketDB) *SellerService {
	return &SellerService{repo: repo}
}

// CreateProfile publishes a seller listing owned by the caller
func (s *SellerService) CreateProfile(caller models.Identity, input ProfileInput) (models.SellerProfile, error) {
	if caller.UserID == "" {
		return models.SellerProfile{}, fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}
	if input.Name == "" || input.Role == "" || input.Skill == "" {
		return models.SellerProfile{}, fmt.Errorf("service: %w - name, role and skill are required", marketerrors.ErrInvalidInput)
	}
	if input.HourlyRate <= 0 {
		return models.SellerProfile{}, fmt.Errorf("service: %w - non-positive hourly rate", marketerrors.ErrInvalidInput)
	}

	profile := models.SellerProfile{
		SellerID:    utils.GenerateID(),
		UserID:      caller.UserID,
		Name:        input.Name,
		Role:        input.Role,
		Skill:       input.Skill,
		Description: input.Description,
		Experience:  input.Experience,
		HourlyRate:  input.HourlyRate,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateSeller(profile); err != nil {
		return models.SellerProfile{}, fmt.Errorf("service: failed to create seller profile for user %s: %w", caller.UserID, err)
	}

	return profile, nil
}

// ListProfiles returns every published seller listing
func (s *SellerService) ListProfiles() ([]models.SellerProfile, error) {
	profiles, err := s.repo.ListSellers()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list seller profiles: %w", err)
	}
	return profiles, nil
}

// GetOwnProfile returns the caller's seller listing
func (s *SellerService) GetOwnProfile(caller models.Identity) (models.SellerProfile, error) {
	if caller.UserID == "" {
		return models.SellerProfile{}, fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}

	profile, err := s.repo.GetSellerByOwner(caller.UserID)
	if err != nil {
		return models.SellerProfile{}, fmt.Errorf("service: failed to get seller profile for user %s: %w", caller.UserID, err)
	}
	return profile, nil
}
