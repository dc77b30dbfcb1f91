package middleware

import (
	"net/http"
	"strings"

	"flicktickets/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by JWTAuth.
const (
	UsernameKey = "username"
	RoleKey     = "userRole"
)

// JWTAuth requires a valid "Authorization: Bearer <token>" header and puts
// the token's username and role on the context.
func JWTAuth(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			token = ""
		}

		var (
			claims *auth.Claims
			err    = auth.ErrMissingToken
		)
		if tokens != nil {
			claims, err = tokens.Validate(strings.TrimSpace(token))
		}
		if err != nil {
			zap.L().Warn("auth rejected",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":    false,
				"message":    "Authentication required.",
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Set(UsernameKey, claims.Subject)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// AuthOptional sets username and role from a valid bearer token but lets
// anonymous requests through unchanged.
func AuthOptional(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens != nil {
			if token, ok := strings.CutPrefix(strings.TrimSpace(c.GetHeader("Authorization")), "Bearer "); ok {
				if claims, err := tokens.Validate(strings.TrimSpace(token)); err == nil {
					c.Set(UsernameKey, claims.Subject)
					c.Set(RoleKey, claims.Role)
				}
			}
		}
		c.Next()
	}
}
