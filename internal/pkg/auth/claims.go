// Package auth defines the JWT claims carried by access tokens and the gin
// context key they are stored under after authentication.
package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ClaimsKey is the gin context key the auth middleware stores claims under.
const ClaimsKey = "claims"

// CustomClaims is the payload of an access token. UserID is the public
// (sqids) ID, never the database primary key.
type CustomClaims struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// ClaimsFromContext extracts the authenticated claims stored by the auth
// middleware, if any.
func ClaimsFromContext(c *gin.Context) (*CustomClaims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*CustomClaims)
	return claims, ok
}
