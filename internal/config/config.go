package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Auth     AuthConfig
	Ai       AIConfig
	Cache    CacheConfig
	Chat     ChatConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	RateLimitMax       int // POST /chat requests per minute per client
}

type DatabaseConfig struct {
	Connection string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type AuthConfig struct {
	JwtSecret    string
	JwtPublicKey string // PEM, switches verification to RS256 when set
}

type AIConfig struct {
	LLMProvider   string // "floatchat" or "ollama"
	BaseURL       string
	Timeout       time.Duration
	OllamaBaseURL string
	OllamaModel   string
}

type CacheConfig struct {
	Driver     string // "memory" or "redis"
	ProfileTTL time.Duration
}

type ChatConfig struct {
	ContextWindow int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	SampleRatio float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ORIGIN", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			RateLimitMax:       getEnvAsInt("RATE_LIMIT_MAX", 30),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", "host=localhost user=postgres password=postgres dbname=argo_data port=5432 sslmode=disable"),
		},
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DATABASE", "floatchat"),
			Collection: getEnv("MONGO_CHAT_COLLECTION", "chats"),
		},
		Auth: AuthConfig{
			JwtSecret:    getEnv("JWT_SECRET", ""),
			JwtPublicKey: getEnv("JWT_PUBLIC_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "floatchat"),
			BaseURL:       getEnv("API_BASE_URL", "http://localhost:8000"),
			Timeout:       getEnvAsDuration("API_TIMEOUT", 30*time.Second),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("LLM_MODEL", "llama3"),
		},
		Cache: CacheConfig{
			Driver:     getEnv("PROFILE_CACHE_DRIVER", "memory"),
			ProfileTTL: getEnvAsDuration("PROFILE_CACHE_TTL", 10*time.Minute),
		},
		Chat: ChatConfig{
			ContextWindow: getEnvAsInt("CHAT_CONTEXT_WINDOW", 5),
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "floatchat-backend"),
			SampleRatio: getEnvAsFloat("OTEL_SAMPLE_RATIO", 1.0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("45s") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
