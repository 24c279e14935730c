package handler

import (
	"fmt"
	"net/http"

	"freelance-market/internal/marketerrors"
	model "freelance-market/internal/models"
	"freelance-market/services/bids/helpers"
	"freelance-market/utils"

	"github.com/gin-gonic/gin"
)

type BidServiceInterface interface {
	PlaceBid(caller model.Identity, sellerID string, amount float64, message string) (model.Bid, error)
	ListBidsForSeller(caller model.Identity) ([]model.SellerBid, string, error)
	ListBidsForClient(caller model.Identity) ([]model.ClientBid, error)
	UpdateBidStatus(caller model.Identity, bidID string, status model.BidStatus) (model.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /api/bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	caller, ok := utils.CallerIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "authentication required")
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(caller, req.SellerID, req.Amount, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":   "PlaceBidHandler",
			"seller_id": req.SellerID,
			"client_id": caller.UserID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":    bid.BidID,
		"seller_id": bid.SellerID,
		"client_id": bid.ClientID,
		"amount":    bid.Amount,
	})
}

// ListSellerBidsHandler handles GET /api/bids/seller
func (h *BidHandler) ListSellerBidsHandler(c *gin.Context) {
	caller, ok := utils.CallerIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "authentication required")
		return
	}

	bids, sellerID, err := h.service.ListBidsForSeller(caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListSellerBidsHandler: error retrieving bids", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	if bids == nil {
		bids = []model.SellerBid{}
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bids": bids, "seller_id": sellerID}, "bids retrieved successfully")
	helpers.LogSuccess("ListSellerBidsHandler", "bids retrieved successfully", map[string]any{
		"seller_id": sellerID,
		"count":     len(bids),
	})
}

// ListClientBidsHandler handles GET /api/bids/client
func (h *BidHandler) ListClientBidsHandler(c *gin.Context) {
	caller, ok := utils.CallerIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "authentication required")
		return
	}

	bids, err := h.service.ListBidsForClient(caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListClientBidsHandler: error retrieving bids", map[string]any{
			"client_id": caller.UserID,
			"error":     err.Error(),
		})
		return
	}

	if bids == nil {
		bids = []model.ClientBid{}
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bids": bids}, "bids retrieved successfully")
	helpers.LogSuccess("ListClientBidsHandler", "bids retrieved successfully", map[string]any{
		"client_id": caller.UserID,
		"count":     len(bids),
	})
}

// UpdateBidStatusHandler handles PATCH /api/bids/:id/status
func (h *BidHandler) UpdateBidStatusHandler(c *gin.Context) {
	caller, ok := utils.CallerIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "authentication required")
		return
	}

	var req helpers.UpdateBidStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidStatusHandler", err)
		return
	}

	bidID := c.Param("id")
	bid, err := h.service.UpdateBidStatus(caller, bidID, model.BidStatus(req.Status))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateBidStatusHandler: failed to update bid status", map[string]any{
			"bid_id": bidID,
			"status": req.Status,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), fmt.Sprintf("bid %s successfully", bid.Status))
	helpers.LogSuccess("UpdateBidStatusHandler", "bid status updated", map[string]any{
		"bid_id":    bid.BidID,
		"status":    string(bid.Status),
		"client_id": bid.ClientID,
	})
}
