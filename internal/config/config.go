package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Analyzer  AnalyzerConfig
	Upload    UploadConfig
	Workspace WorkspaceConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// AnalyzerConfig points at the remote analysis service. A zero Timeout
// disables the client timeout.
type AnalyzerConfig struct {
	BaseURL string
	Timeout time.Duration
}

type UploadConfig struct {
	MaxFileSize int64
}

type WorkspaceConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Analyzer: AnalyzerConfig{
			BaseURL: getEnv("ANALYZER_BASE_URL", "http://localhost:8000"),
			Timeout: getEnvAsDuration("ANALYZER_TIMEOUT", "60s"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Workspace: WorkspaceConfig{
			IdleTTL:       getEnvAsDuration("WORKSPACE_IDLE_TTL", "30m"),
			SweepInterval: getEnvAsDuration("WORKSPACE_SWEEP_INTERVAL", "1m"),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil && duration >= 0 {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
