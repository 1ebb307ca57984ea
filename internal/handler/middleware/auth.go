package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"event-booking-engine/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey     = "user_id"
	ctxDepartmentKey = "department"
	ctxRoleKey       = "role"
)

// TokenValidator decouples the middleware from the concrete token service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	validator TokenValidator
}

func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.validator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxDepartmentKey, claims.Department)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetDepartment returns the authenticated caller's department from context.
func GetDepartment(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxDepartmentKey)
	if !exists {
		return "", false
	}
	dept, ok := v.(string)
	return dept, ok
}
