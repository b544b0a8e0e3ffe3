package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/shared/response"
	"crowdfund-backoffice/pkg/jwt"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

var ErrNoUser = errors.New("user not authenticated")

// AuthMiddleware - xác thực Bearer token, set user_id (uuid.UUID) + role vào context
func AuthMiddleware(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify
		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString("request_id")).Msg("Token rejected")
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// 4. Set vào context cho handler
		c.Set(ContextUserID, uuid.MustParse(claims.UserID))
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// GetUserID đọc user id do AuthMiddleware set.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, ErrNoUser
	}
	userID, ok := value.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrNoUser
	}
	return userID, nil
}
