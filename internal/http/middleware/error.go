package middleware

import (
	"fmt"
	"net/http"

	"github.com/eduvision/flux-backend/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler converts panics into a JSON 500 so no fault ever reaches the
// client as a raw stack trace.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("method", ctx.Request.Method),
		)

		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrInternalServer,
			Message: fmt.Sprintf("%v", recovered),
		})
	})
}
