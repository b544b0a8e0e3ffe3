package middleware

import (
	"github.com/gin-gonic/gin"

	"crowdfund-backoffice/internal/shared/response"
	"crowdfund-backoffice/pkg/jwt"
)

// AdminMiddleware checks the role set by AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != jwt.RoleAdmin {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
