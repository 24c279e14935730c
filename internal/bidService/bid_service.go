package bids

import (
	"errors"
	"fmt"
	"time"

	"freelance-market/internal/marketerrors"
	"freelance-market/internal/models"
	"freelance-market/internal/notify"
	"freelance-market/internal/repository"
	"freelance-market/utils"
)

// StatusUpdate is the payload pushed to the client's room after a transition
type StatusUpdate struct {
	BidID  string           `json:"bid_id"`
	Status models.BidStatus `json:"status"`
}

// BidService defines the business logic for the bid lifecycle
type BidService struct {
	repo     repository.MarketDB
	notifier notify.Publisher
}

// NewBidService creates a new BidService instance
func NewBidService(repo repository.MarketDB, notifier notify.Publisher) *BidService {
	return &BidService{
		repo:     repo,
		notifier: notifier,
	}
}

// PlaceBid validates and records a client's offer against a seller profile.
// The client identity always comes from the verified caller, never from the
// request payload. After the record is committed, the seller's room is
// notified; delivery is best-effort and cannot fail the call.
func (s *BidService) PlaceBid(caller models.Identity, sellerID string, amount float64, message string) (models.Bid, error) {
	if err := validateBid(caller, sellerID, amount, message); err != nil {
		return models.Bid{}, err
	}

	now := time.Now().UTC()
	bid := models.Bid{
		BidID:     utils.GenerateID(),
		SellerID:  sellerID,
		ClientID:  caller.UserID,
		Amount:    amount,
		Message:   message,
		Status:    models.BidStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for seller %s by client %s: %w", sellerID, caller.UserID, err)
	}

	s.notifier.Publish(sellerID, notify.EventBidCreated, bid)

	return bid, nil
}

// validateBid checks input validity for bid placement
func validateBid(caller models.Identity, sellerID string, amount float64, message string) error {
	if caller.UserID == "" {
		return fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}
	if sellerID == "" {
		return fmt.Errorf("service: %w - missing seller id", marketerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive amount", marketerrors.ErrInvalidBid)
	}
	if message == "" {
		return fmt.Errorf("service: %w - empty message", marketerrors.ErrInvalidBid)
	}
	return nil
}

// ListBidsForSeller returns every bid targeting the caller's seller profile,
// newest first, along with the profile id the caller subscribes to for
// bid-created notifications.
func (s *BidService) ListBidsForSeller(caller models.Identity) ([]models.SellerBid, string, error) {
	if caller.UserID == "" {
		return nil, "", fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}

	profile, err := s.repo.GetSellerByOwner(caller.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("service: failed to resolve seller profile for user %s: %w", caller.UserID, err)
	}

	bids, err := s.repo.ListBidsBySeller(profile.SellerID)
	if err != nil {
		return nil, "", fmt.Errorf("service: failed to list bids for seller %s: %w", profile.SellerID, err)
	}

	return bids, profile.SellerID, nil
}

// ListBidsForClient returns every bid the caller has placed, newest first
func (s *BidService) ListBidsForClient(caller models.Identity) ([]models.ClientBid, error) {
	if caller.UserID == "" {
		return nil, fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}

	bids, err := s.repo.ListBidsByClient(caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for client %s: %w", caller.UserID, err)
	}

	return bids, nil
}

// UpdateBidStatus moves a pending bid to accepted or rejected. Only the owner
// of the seller profile the bid targets may resolve it. The client's room is
// notified after the transition commits.
func (s *BidService) UpdateBidStatus(caller models.Identity, bidID string, status models.BidStatus) (models.Bid, error) {
	if caller.UserID == "" {
		return models.Bid{}, fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}
	if status != models.BidStatusAccepted && status != models.BidStatusRejected {
		return models.Bid{}, fmt.Errorf("service: %w - %q", marketerrors.ErrInvalidStatus, status)
	}

	bid, err := s.repo.GetBidByID(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}

	profile, err := s.repo.GetSellerByOwner(caller.UserID)
	if err != nil {
		if errors.Is(err, marketerrors.ErrSellerNotFound) {
			return models.Bid{}, fmt.Errorf("service: user %s has no seller profile: %w", caller.UserID, marketerrors.ErrNotBidOwner)
		}
		return models.Bid{}, fmt.Errorf("service: failed to resolve seller profile for user %s: %w", caller.UserID, err)
	}
	if profile.SellerID != bid.SellerID {
		return models.Bid{}, fmt.Errorf("service: seller %s: %w", profile.SellerID, marketerrors.ErrNotBidOwner)
	}

	updated, err := s.repo.SetBidStatus(bidID, status)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update status of bid %s: %w", bidID, err)
	}

	s.notifier.Publish(updated.ClientID, notify.EventBidStatusUpdated, StatusUpdate{
		BidID:  updated.BidID,
		Status: updated.Status,
	})

	return updated, nil
}
