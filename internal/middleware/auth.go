package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/red7x7/membership-api/internal/constants"
	apierrors "github.com/red7x7/membership-api/internal/errors"
	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/token"
)

// RequireAuth verifies the bearer token and attaches its claims to the
// request context.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "Token not provided")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not in the
// allowed set.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := GetClaims(c)
		if !exists {
			apierrors.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Insufficient permissions")
		c.Abort()
	}
}

// GetClaims retrieves the verified token claims from the context.
func GetClaims(c *gin.Context) (*token.Claims, bool) {
	value, exists := c.Get(constants.ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}
