// Load envs from .env
// Provide default values
// Fail fast on missing required settings
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresDSN string
	ElasticURL  string
	ListenAddr  string

	LLMAPIURL string
	LLMAPIKey string
	LLMModel  string

	JWTSecret  string
	StorageDir string

	CORSOrigins []string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		ElasticURL:  os.Getenv("ELASTIC_URL"),
		ListenAddr:  os.Getenv("LISTEN_ADDR"),
		LLMAPIURL:   os.Getenv("LLM_API_URL"),
		LLMAPIKey:   os.Getenv("LLM_API_KEY"),
		LLMModel:    os.Getenv("LLM_MODEL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		StorageDir:  os.Getenv("STORAGE_DIR"),
	}

	// Set default values if not set
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.ElasticURL == "" {
		cfg.ElasticURL = "http://localhost:9200"
	}
	if cfg.LLMAPIURL == "" {
		cfg.LLMAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = "llama-3.3-70b-versatile"
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = "storage"
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimSpace(o))
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	// Validate required fields
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}
