package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/shared/response"
)

// Recovery bắt panic, log kèm request_id và trả envelope 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Msg("Panic recovered")

		response.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		c.Abort()
	})
}
