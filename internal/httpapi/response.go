package httpapi

import (
	"stylehub-be/internal/apperr"
	"stylehub-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error to the wire. The classified
// message goes to the client, the cause only to the logs.
func respondError(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindUnavailable {
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
}
