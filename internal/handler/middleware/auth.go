package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"sweetbloom/internal/handler/httperr"
	"sweetbloom/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxCustomerIDKey = "customer_id"

// AuthMiddleware extracts the customer identity from bearer tokens issued
// by the storefront's identity provider.
type AuthMiddleware struct {
	verifier *jwt.Verifier
}

func NewAuthMiddleware(verifier *jwt.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		claims, err := m.verifier.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxCustomerIDKey, claims.CustomerID)
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

func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	customerID, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := customerID.(uuid.UUID)
	return id, ok
}
