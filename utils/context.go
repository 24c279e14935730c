package utils

import (
	model "freelance-market/internal/models"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "token"

// IdentityContextKey is where the auth middleware stores the verified caller
const IdentityContextKey = "caller_identity"

// SetCallerIdentity attaches the verified caller to the request context
func SetCallerIdentity(c *gin.Context, identity model.Identity) {
	c.Set(IdentityContextKey, identity)
}

// CallerIdentity returns the verified caller stored by the auth middleware
func CallerIdentity(c *gin.Context) (model.Identity, bool) {
	value, ok := c.Get(IdentityContextKey)
	if !ok {
		return model.Identity{}, false
	}
	identity, ok := value.(model.Identity)
	return identity, ok
}
