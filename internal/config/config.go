package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Ai      AIConfig
	Catalog CatalogConfig
	Quiz    QuizConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	BrokerLogPath      string
	CorsAllowedOrigins string
	ImageDir           string
	OtelEnabled        bool
}

type StoreConfig struct {
	Driver      string // "file" | "memory" | "redis" | "postgres"
	Dir         string
	RedisURL    string
	RedisPrefix string
	Connection  string // postgres DSN
}

type AIConfig struct {
	LLMProvider        string // "openai" | "ollama" | "gemini"
	LLMModel           string // empty selects the provider default
	LLMBaseURL         string
	OpenAIKey          string
	EmbeddingProvider  string // "openai" | "ollama" | "gemini"
	EmbeddingModel     string
	EmbeddingBaseURL   string
	OllamaBaseURL      string
	GoogleGemini       string
	EmbeddingCacheSize int
}

type CatalogConfig struct {
	Path         string
	VectorPath   string
	TopicName    string
	IndexOnStart bool
}

type QuizConfig struct {
	FirstQuestion string
	EventTopic    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			BrokerLogPath:      getEnv("BROKER_LOG_PATH", "broker.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3001"),
			ImageDir:           getEnv("IMAGE_DIR", "./house-image"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Store: StoreConfig{
			Driver:      getEnv("STORE_DRIVER", "file"),
			Dir:         getEnv("STORE_DIR", "./data"),
			RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
			RedisPrefix: getEnv("REDIS_PREFIX", "soulful-home:"),
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "openai"),
			LLMModel:           getEnv("LLM_MODEL", ""),
			LLMBaseURL:         getEnv("LLM_BASE_URL", ""),
			OpenAIKey:          getEnv("OPENAI_API_KEY", ""),
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:     getEnv("EMBEDDING_MODEL", ""),
			EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", ""),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GoogleGemini:       getEnv("GOOGLE_GEMINI_API_KEY", ""),
			EmbeddingCacheSize: getEnvAsInt("EMBEDDING_CACHE_SIZE", 1024),
		},
		Catalog: CatalogConfig{
			Path:         getEnv("CATALOG_PATH", "./data/image_descriptions.json"),
			VectorPath:   getEnv("VECTOR_PERSIST_PATH", "./data/vectors"),
			TopicName:    getEnv("CATALOG_INDEX_TOPIC_NAME", "INDEX_CATALOG_IMAGE"),
			IndexOnStart: getEnvAsBool("CATALOG_INDEX_ON_START", true),
		},
		Quiz: QuizConfig{
			FirstQuestion: getEnv("FIRST_QUESTION", ""),
			EventTopic:    getEnv("BROKER_EVENT_TOPIC_NAME", "BROKER_EVENTS"),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
