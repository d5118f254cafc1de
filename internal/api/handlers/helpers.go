package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"asset-hub-api-server/internal/apperr"
	"asset-hub-api-server/internal/api/middleware"
)

// respondError writes the stable error envelope: kind plus human message.
// Underlying causes are logged, never exposed.
func respondError(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.JSON(apperr.Status(err), gin.H{
		"error":   string(apperr.KindOf(err)),
		"message": apperr.MessageOf(err),
	})
}

func callerEmail(c *gin.Context) string {
	return c.GetString(middleware.CtxUserEmail)
}
