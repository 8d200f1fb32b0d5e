package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eduvision/flux-backend/internal/config"
	"github.com/eduvision/flux-backend/internal/http/handlers"
	"github.com/eduvision/flux-backend/internal/http/routes"
	"github.com/eduvision/flux-backend/internal/services/analyze"
	"github.com/eduvision/flux-backend/internal/services/extract"
	"github.com/eduvision/flux-backend/internal/services/provider"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Missing credentials degrade endpoints at call time, never startup.
	if cfg.HuggingFace.Token == "" {
		logger.Warn("HUGGINGFACE_API_TOKEN not set; image generation will fail with provider errors")
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; AI analysis and vision fallback are disabled")
	}
	if !cfg.OCR.Enabled {
		logger.Warn("Local OCR disabled; image uploads rely on the vision fallback only")
	}

	// Initialize services
	generator := provider.NewClient(cfg.HuggingFace, logger)
	analyzer := analyze.NewAnalyzer(cfg.Gemini)

	extractor := extract.NewService(
		[]extract.ImageStrategy{
			extract.NewTesseractStrategy(cfg.OCR),
			extract.NewVisionStrategy(cfg.Gemini),
		},
		extract.NewPDFExtractor(logger),
		logger,
	)
	logger.Info("Extraction strategies ready", zap.Strings("strategies", extractor.Strategies()))

	// Initialize handlers
	imageHandler := handlers.NewImageHandler(generator, logger, cfg)
	contentHandler := handlers.NewContentHandler(extractor, analyzer, logger, cfg)

	router := routes.NewRouter(imageHandler, contentHandler, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
