package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	HuggingFace HuggingFaceConfig
	Gemini      GeminiConfig
	OCR         OCRConfig
	Upload      UploadConfig
}

type ServerConfig struct {
	Port          string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxBodySize   int64
	AllowedOrigin string
}

type HuggingFaceConfig struct {
	Token   string
	URL     string
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type OCRConfig struct {
	Enabled  bool
	Language string
}

type UploadConfig struct {
	Dir string
}

const DefaultModelURL = "https://api-inference.huggingface.co/models/black-forest-labs/FLUX.1-schnell"

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:          getEnv("PORT", "5000"),
			ReadTimeout:   getDuration("READ_TIMEOUT", 90*time.Second),
			WriteTimeout:  getDuration("WRITE_TIMEOUT", 90*time.Second),
			MaxBodySize:   getEnvAsInt64("MAX_BODY_SIZE", 16*1024*1024), // 16MB
			AllowedOrigin: getEnv("FRONTEND_ORIGIN", "*"),
		},
		HuggingFace: HuggingFaceConfig{
			Token:   getEnv("HUGGINGFACE_API_TOKEN", ""),
			URL:     getEnv("HUGGINGFACE_API_URL", DefaultModelURL),
			Timeout: getDuration("HUGGINGFACE_TIMEOUT", 60*time.Second),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: getDuration("GEMINI_TIMEOUT", 60*time.Second),
		},
		OCR: OCRConfig{
			Enabled:  getEnvAsBool("OCR_ENABLED", true),
			Language: getEnv("OCR_LANGUAGE", "eng"),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", os.TempDir()),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
