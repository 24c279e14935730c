package handler

import (
	"fmt"
	"net/http"
	"time"

	model "freelance-market/internal/models"
	"freelance-market/services/accounts/helpers"
	"freelance-market/utils"

	"github.com/gin-gonic/gin"
)

type AccountServiceInterface interface {
	Signup(username, email, password string, role model.Role) (model.User, string, error)
	Login(email, password string) (model.User, string, error)
}

type AccountHandler struct {
	service      AccountServiceInterface
	cookieSecure bool
	cookieMaxAge int
}

func NewAccountHandler(service AccountServiceInterface, cookieSecure bool, tokenTTL time.Duration) *AccountHandler {
	return &AccountHandler{
		service:      service,
		cookieSecure: cookieSecure,
		cookieMaxAge: int(tokenTTL.Seconds()),
	}
}

// SignupHandler handles POST /api/signup
func (h *AccountHandler) SignupHandler(c *gin.Context) {
	var req helpers.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		wrappedErr := fmt.Errorf("invalid request payload: %w", err)
		utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
		utils.Warn("SignupHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	user, token, err := h.service.Signup(req.Username, req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SignupHandler: signup failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	h.setSessionCookie(c, token)
	utils.JSONResponse(c, http.StatusCreated, helpers.ToUserResponse(user), "account created successfully")
	utils.Info("SignupHandler: account created", map[string]any{
		"user_id": user.UserID,
		"role":    string(user.Role),
	})
}

// LoginHandler handles POST /api/login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		wrappedErr := fmt.Errorf("invalid request payload: %w", err)
		utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
		utils.Warn("LoginHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	h.setSessionCookie(c, token)
	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "login successful")
	utils.Info("LoginHandler: login successful", map[string]any{"user_id": user.UserID})
}

func (h *AccountHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(utils.SessionCookieName, token, h.cookieMaxAge, "/", "", h.cookieSecure, true)
}
