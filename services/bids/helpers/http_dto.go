package helpers

import (
	model "freelance-market/internal/models"
	"time"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	SellerID string  `json:"seller_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Message  string  `json:"message" binding:"required"`
}

type UpdateBidStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	SellerID  string  `json:"seller_id"`
	ClientID  string  `json:"client_id"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToBidResponse converts a stored bid into its response shape
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		SellerID:  bid.SellerID,
		ClientID:  bid.ClientID,
		Amount:    bid.Amount,
		Message:   bid.Message,
		Status:    string(bid.Status),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
