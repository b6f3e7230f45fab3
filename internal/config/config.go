package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ai        AIConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	AdminApiKey        string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	Provider  string // "openai" or "ollama"
	Model     string // e.g. "gpt-4", "llama3"
	BaseURL   string
	ApiKey    string
	QuizModel string // quiz generation may use a cheaper model
}

type SchedulerConfig struct {
	Enabled            bool
	TaggingHourUTC     int
	RecommendationHour int
	TaggingBatchSize   int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			AdminApiKey:        getEnv("ADMIN_API_KEY", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			Provider:  getEnv("LLM_PROVIDER", "openai"),
			Model:     getEnv("LLM_MODEL", "gpt-4"),
			BaseURL:   getEnv("LLM_BASE_URL", ""),
			ApiKey:    getEnv("OPENAI_KEY", ""),
			QuizModel: getEnv("LLM_QUIZ_MODEL", ""),
		},
		Scheduler: SchedulerConfig{
			Enabled:            getEnvAsBool("SCHEDULER_ENABLED", true),
			TaggingHourUTC:     getEnvAsInt("TAGGING_HOUR_UTC", 2),
			RecommendationHour: getEnvAsInt("RECOMMENDATION_HOUR_UTC", 3),
			TaggingBatchSize:   getEnvAsInt("TAGGING_BATCH_SIZE", 50),
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
