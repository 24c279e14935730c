package repository

import (
	"fmt"
	"freelance-market/internal/marketerrors"
	model "freelance-market/internal/models"
	"sync"
	"time"
)

// MarketDB defines the document storage interface for the marketplace
type MarketDB interface {
	CreateUser(user model.User) error
	GetUserByEmail(email string) (model.User, error)
	GetUserByID(userID string) (model.User, error)

	CreateSeller(profile model.SellerProfile) error
	GetSellerByID(sellerID string) (model.SellerProfile, error)
	GetSellerByOwner(userID string) (model.SellerProfile, error)
	ListSellers() ([]model.SellerProfile, error)

	CreateBid(bid model.Bid) error
	GetBidByID(bidID string) (model.Bid, error)
	ListBidsBySeller(sellerID string) ([]model.SellerBid, error)
	ListBidsByClient(clientID string) ([]model.ClientBid, error)
	SetBidStatus(bidID string, status model.BidStatus) (model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu       sync.RWMutex
	users    map[string]model.User          // key: userID -> value: user
	emails   map[string]string              // key: email -> value: userID
	sellers  map[string]model.SellerProfile // key: sellerID -> value: profile
	owners   map[string]string              // key: owning userID -> value: sellerID
	bids     map[string]model.Bid           // key: bidID -> value: bid
	bidOrder []string                       // bidIDs in creation order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:   make(map[string]model.User),
		emails:  make(map[string]string),
		sellers: make(map[string]model.SellerProfile),
		owners:  make(map[string]string),
		bids:    make(map[string]model.Bid),
	}
}

// CreateUser stores a new account; emails are unique
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[user.Email]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, marketerrors.ErrUserExists)
	}

	r.users[user.UserID] = user
	r.emails[user.Email] = user.UserID
	return nil
}

// GetUserByEmail returns the account registered under email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.emails[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, marketerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// GetUserByID returns the account with the given id
func (r *MemoryRepo) GetUserByID(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

// CreateSeller stores a new seller profile
func (r *MemoryRepo) CreateSeller(profile model.SellerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sellers[profile.SellerID] = profile
	r.owners[profile.UserID] = profile.SellerID
	return nil
}

// GetSellerByID returns the seller profile with the given id
func (r *MemoryRepo) GetSellerByID(sellerID string) (model.SellerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.sellers[sellerID]
	if !ok {
		return model.SellerProfile{}, fmt.Errorf("get seller %s: %w", sellerID, marketerrors.ErrSellerNotFound)
	}
	return profile, nil
}

// GetSellerByOwner returns the seller profile owned by the given user
func (r *MemoryRepo) GetSellerByOwner(userID string) (model.SellerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sellerID, ok := r.owners[userID]
	if !ok {
		return model.SellerProfile{}, fmt.Errorf("get seller for user %s: %w", userID, marketerrors.ErrSellerNotFound)
	}
	return r.sellers[sellerID], nil
}

// ListSellers returns every published seller profile
func (r *MemoryRepo) ListSellers() ([]model.SellerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]model.SellerProfile, 0, len(r.sellers))
	for _, p := range r.sellers {
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// CreateBid records a bid against an existing seller profile
func (r *MemoryRepo) CreateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sellers[bid.SellerID]; !ok {
		return fmt.Errorf("create bid for seller %s: %w", bid.SellerID, marketerrors.ErrSellerNotFound)
	}

	r.bids[bid.BidID] = bid
	r.bidOrder = append(r.bidOrder, bid.BidID)
	return nil
}

// GetBidByID returns the bid with the given id
func (r *MemoryRepo) GetBidByID(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	return bid, nil
}

// ListBidsBySeller returns all bids targeting a seller profile, newest first,
// with the bidding client's details joined in
func (r *MemoryRepo) ListBidsBySeller(sellerID string) ([]model.SellerBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := []model.SellerBid{}
	for i := len(r.bidOrder) - 1; i >= 0; i-- {
		bid := r.bids[r.bidOrder[i]]
		if bid.SellerID != sellerID {
			continue
		}

		entry := model.SellerBid{Bid: bid}
		if client, ok := r.users[bid.ClientID]; ok {
			entry.Client = model.ClientInfo{
				UserID:   client.UserID,
				Username: client.Username,
				Email:    client.Email,
			}
		}
		bids = append(bids, entry)
	}
	return bids, nil
}

// ListBidsByClient returns all bids a client has placed, newest first,
// with a summary of the targeted seller profile joined in
func (r *MemoryRepo) ListBidsByClient(clientID string) ([]model.ClientBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := []model.ClientBid{}
	for i := len(r.bidOrder) - 1; i >= 0; i-- {
		bid := r.bids[r.bidOrder[i]]
		if bid.ClientID != clientID {
			continue
		}

		entry := model.ClientBid{Bid: bid}
		if seller, ok := r.sellers[bid.SellerID]; ok {
			entry.Seller = model.SellerInfo{
				Name: seller.Name,
				Role: seller.Role,
			}
		}
		bids = append(bids, entry)
	}
	return bids, nil
}

// SetBidStatus moves a pending bid to a terminal status. The check and the
// write share one critical section, so two racing transitions on the same
// bid produce exactly one winner.
func (r *MemoryRepo) SetBidStatus(bidID string, status model.BidStatus) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("set status of bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	if bid.Status.Terminal() {
		return model.Bid{}, fmt.Errorf("set status of bid %s (%s): %w", bidID, bid.Status, marketerrors.ErrInvalidTransition)
	}

	bid.Status = status
	bid.UpdatedAt = time.Now().UTC()
	r.bids[bidID] = bid
	return bid, nil
}
