// internal/app/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-app/internal/pkg/auth"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/response"
	service_auth "github.com/coursewave/coursewave-app/pkg/service/auth"
)

type Middleware struct {
	tokenSvc service_auth.TokenService
}

func NewMiddleware(tokenSvc service_auth.TokenService) *Middleware {
	return &Middleware{tokenSvc: tokenSvc}
}

// JWTAuth requires a valid bearer token and stores its claims in the
// request context.
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "missing access token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(parts[1])
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid or expired access token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// JWTAuthOptional parses a bearer token when one is present but never
// blocks the request.
func (m *Middleware) JWTAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next()
			return
		}

		if claims, err := m.tokenSvc.ParseAccessToken(parts[1]); err == nil {
			c.Set(auth.ClaimsKey, claims)
		}
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated user
// holds one of the given roles. It must run after JWTAuth.
func (m *Middleware) RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		claims, ok := auth.ClaimsFromContext(c)
		if !ok {
			response.Fail(c, http.StatusForbidden, "missing permission information")
			c.Abort()
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			response.Fail(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminAuth restricts the route to admins. It must run after JWTAuth.
func (m *Middleware) AdminAuth() gin.HandlerFunc {
	return m.RequireRoles(model.RoleAdmin)
}
