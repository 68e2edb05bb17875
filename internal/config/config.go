package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Ai   AIConfig
	Keys APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	CorpusPath         string
	ConversationStore  string // "memory" or "redis"
	RedisURL           string
}

type APIKeys struct {
	OpenAI string
}

type AIConfig struct {
	EmbeddingProvider string // "openai" or "ollama"
	EmbeddingModel    string
	OllamaBaseURL     string
	OllamaEmbedModel  string
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string // e.g. "gpt-4o-mini", "llama3"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			CorpusPath:         getEnv("CORPUS_PATH", "aromakiss_texts.json"),
			ConversationStore:  getEnv("CONVERSATION_STORE", "memory"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Keys: APIKeys{
			OpenAI: getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4o-mini"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
