package routes

import (
	"net/http"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/eduvision/flux-backend/internal/http/handlers"
	"github.com/eduvision/flux-backend/internal/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	imageHandler   *handlers.ImageHandler
	contentHandler *handlers.ContentHandler
	config         *config.Config
	logger         *zap.Logger
}

func NewRouter(
	imageHandler *handlers.ImageHandler,
	contentHandler *handlers.ContentHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		imageHandler:   imageHandler,
		contentHandler: contentHandler,
		config:         cfg,
		logger:         logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = r.config.Server.MaxBodySize

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(corsMiddleware(r.config.Server.AllowedOrigin))
	router.Use(middleware.SecurityHeaders())
	router.Use(limitBodySize(r.config.Server.MaxBodySize))

	router.GET("/health", r.imageHandler.HealthCheck)
	router.POST("/generate-image", r.imageHandler.GenerateImage)
	router.POST("/test-quality", r.imageHandler.TestQuality)
	router.GET("/models", r.imageHandler.ListModels)

	api := router.Group("/api")
	{
		api.POST("/upload", r.contentHandler.Upload)
		api.POST("/analyze", r.contentHandler.Analyze)
		api.POST("/extract-pdf", r.contentHandler.ExtractPDF)
	}

	return router
}

func corsMiddleware(origin string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cors.New(cfg)
}

// limitBodySize caps the decoded request body, multipart included.
func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}
