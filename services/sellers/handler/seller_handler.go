package handler

import (
	"fmt"
	"net/http"

	"freelance-market/internal/marketerrors"
	model "freelance-market/internal/models"
	sellers "freelance-market/internal/sellerService"
	"freelance-market/services/sellers/helpers"
	"freelance-market/utils"

	"github.com/gin-gonic/gin"
)

type SellerServiceInterface interface {
	CreateProfile(caller model.Identity, input sellers.ProfileInput) (model.SellerProfile, error)
	ListProfiles() ([]model.SellerProfile, error)
	GetOwnProfile(caller model.Identity) (model.SellerProfile, error)
}

type SellerHandler struct {
	service SellerServiceInterface
}

func NewSellerHandler(service SellerServiceInterface) *SellerHandler {
	return &SellerHandler{service: service}
}

// CreateSellerHandler handles POST /api/seller
func (h *SellerHandler) CreateSellerHandler(c *gin.Context) {
	caller, ok := utils.CallerIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "authentication required")
		return
	}

	var req helpers.CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		wrappedErr := fmt.Errorf("invalid request payload: %w", err)
		utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
		utils.Warn("CreateSellerHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	profile, err := h.service.CreateProfile(caller, sellers.ProfileInput{
		Name:        req.Name,
		Role:        req.Role,
		Skill:       req.Skill,
		Description: req.Description,
		Experience:  req.Experience,
		HourlyRate:  req.HourlyRate,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateSellerHandler: failed to create profile", map[string]any{
			"user_id": caller.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, profile, "seller profile created successfully")
	utils.Info("CreateSellerHandler: seller profile created", map[string]any{
		"seller_id": profile.SellerID,
		"user_id":   profile.UserID,
	})
}

// ListSellersHandler handles GET /api/sellers
func (h *SellerHandler) ListSellersHandler(c *gin.Context) {
	profiles, err := h.service.ListProfiles()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListSellersHandler: error retrieving profiles", map[string]any{"error": err.Error()})
		return
	}

	if profiles == nil {
		profiles = []model.SellerProfile{}
	}

	utils.JSONResponse(c, http.StatusOK, profiles, "seller profiles retrieved successfully")
}

// GetOwnSellerHandler handles GET /api/seller/me
func (h *SellerHandler) GetOwnSellerHandler(c *gin.Context) {
	caller, ok := utils.CallerIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "authentication required")
		return
	}

	profile, err := h.service.GetOwnProfile(caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "seller profile retrieved successfully")
}
