package models

import "time"

// Role classifies an account as a bidding client or a freelance seller
type Role string

const (
	RoleClient Role = "client"
	RoleSeller Role = "seller"
)

// BidStatus is the lifecycle state of a bid
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Terminal reports whether a bid in this status can no longer transition
func (s BidStatus) Terminal() bool {
	return s == BidStatusAccepted || s == BidStatusRejected
}

// User represents a registered marketplace account
type User struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the verified caller attached to a request
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// SellerProfile is a published freelancer listing owned by one user
type SellerProfile struct {
	SellerID    string    `json:"seller_id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Skill       string    `json:"skill"`
	Description string    `json:"description"`
	Experience  int       `json:"experience"`
	HourlyRate  float64   `json:"hourly_rate"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bid is a client's offer against a seller profile
type Bid struct {
	BidID     string    `json:"bid_id"`
	SellerID  string    `json:"seller_id"`
	ClientID  string    `json:"client_id"`
	Amount    float64   `json:"amount"`
	Message   string    `json:"message"`
	Status    BidStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientInfo is the client detail joined into a seller's bid listing
type ClientInfo struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SellerInfo is the seller summary joined into a client's bid listing
type SellerInfo struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// SellerBid is a bid as seen by the seller it targets
type SellerBid struct {
	Bid
	Client ClientInfo `json:"client"`
}

// ClientBid is a bid as seen by the client who placed it
type ClientBid struct {
	Bid
	Seller SellerInfo `json:"seller"`
}
