package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/auth"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/dto"
)

// Context keys set by the auth middleware
const (
	ClaimsKey     = "jwt_claims"
	UserIDKey     = "jwt_user_id"
	RoleKey       = "jwt_role"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// RoleAdmin is the role required by the admin surface
const RoleAdmin = "ADMIN"

// RequireAuth validates the bearer token and stores the claims in the
// gin context. Requests without a valid access token get a 401.
func RequireAuth(tokens *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		tokenString := strings.TrimPrefix(header, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				abortUnauthorized(c, "token has expired")
				return
			}
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose role is not ADMIN.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("FORBIDDEN", "admin access required"))
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the validated claims from the gin context
func GetClaims(c *gin.Context) *auth.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID retrieves the authenticated user id from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

// GetRole retrieves the authenticated role from the gin context
func GetRole(c *gin.Context) string {
	if v, exists := c.Get(RoleKey); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse("UNAUTHORIZED", message))
}
