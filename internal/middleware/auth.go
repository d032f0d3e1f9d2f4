// Package middleware contains gin middleware for the greeting service.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/cloud-compute-demo/internal/auth"
	"github.com/sebasr/cloud-compute-demo/internal/models"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ClientKey is the context key for the authenticated client name
const ClientKey ContextKey = "client"

// AuthMiddleware guards routes with service tokens
type AuthMiddleware struct {
	tokens *auth.TokenService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Required returns a middleware that requires a valid service token.
// Returns 401 Unauthorized if the token is missing or invalid.
func (m *AuthMiddleware) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.extractAndValidateToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorDetail{
				Detail: err.Error(),
			})
			return
		}

		c.Set(string(ClientKey), claims.Client)
		c.Next()
	}
}

func (m *AuthMiddleware) extractAndValidateToken(c *gin.Context) (*auth.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("invalid authorization header format")
	}

	tokenString := parts[1]
	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return m.tokens.ValidateToken(tokenString)
}

// GetClient retrieves the authenticated client name from the context
func GetClient(c *gin.Context) (string, error) {
	client, exists := c.Get(string(ClientKey))
	if !exists {
		return "", errors.New("client not authenticated")
	}

	name, ok := client.(string)
	if !ok {
		return "", errors.New("invalid client format")
	}

	return name, nil
}
