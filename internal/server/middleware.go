package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"freelance-market/internal/marketerrors"
	"freelance-market/internal/models"
	"freelance-market/utils"

	"github.com/gin-gonic/gin"
)

// TokenVerifier turns a request credential into a caller identity
type TokenVerifier interface {
	VerifyToken(token string) (models.Identity, error)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// CORSMiddleware allows the configured frontend origin to call the API with
// credentialed requests
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", frontendURL)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-CSRF-Token, X-Requested-With")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AuthRequiredMiddleware verifies the session credential and stores the
// caller identity in the request context. The credential comes from the
// session cookie, with an Authorization bearer header as fallback.
func AuthRequiredMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractCredential(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "authentication required")
			c.Abort()
			return
		}

		identity, err := verifier.VerifyToken(token)
		if err != nil {
			status := http.StatusUnauthorized
			if !errors.Is(err, marketerrors.ErrUnauthenticated) {
				status = http.StatusInternalServerError
			}
			utils.JSONError(c, status, err, "invalid session")
			utils.Warn("rejected request credential", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		utils.SetCallerIdentity(c, identity)
		c.Next()
	}
}

func extractCredential(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
