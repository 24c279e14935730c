package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"freelance-market/utils"

	"github.com/gin-gonic/gin"
)

// Double-submit cookie CSRF protection: the token lives both in a cookie and
// in a response the frontend reads, and every state-changing request must
// echo it back in a header matching the cookie.
const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	csrfTokenBytes = 32
	csrfCookieAge  = 24 * 60 * 60 // seconds
)

var errCSRF = errors.New("invalid csrf token")

// IssueCSRFTokenHandler handles GET /api/csrf-token
func IssueCSRFTokenHandler(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := generateCSRFToken()
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err, "failed to issue csrf token")
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(csrfCookieName, token, csrfCookieAge, "/", "", secure, true)
		utils.JSONResponse(c, http.StatusOK, gin.H{"csrf_token": token}, "csrf token issued")
	}
}

// CSRFMiddleware rejects state-changing requests whose header token does not
// match the cookie. Safe methods pass through untouched.
func CSRFMiddleware(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		c.Next()
		return
	}

	cookie, err := c.Cookie(csrfCookieName)
	header := c.GetHeader(csrfHeaderName)
	if err != nil || cookie == "" || header == "" ||
		subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
		utils.JSONError(c, http.StatusForbidden, errCSRF, "invalid csrf token")
		utils.Warn("csrf check failed", map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
		c.Abort()
		return
	}

	c.Next()
}

func generateCSRFToken() (string, error) {
	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate csrf token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
