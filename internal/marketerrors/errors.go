package marketerrors

import "errors"

// Repository-level errors
var (
	ErrBidNotFound    = errors.New("bid not found")
	ErrSellerNotFound = errors.New("seller profile not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
)

// business logic errors
var (
	ErrInvalidBid         = errors.New("invalid bid")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = errors.New("invalid bid status")
	ErrInvalidTransition  = errors.New("bid already resolved")
	ErrNotBidOwner        = errors.New("caller does not own the bid's seller profile")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
)
