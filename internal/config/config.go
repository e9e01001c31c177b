package config

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultGeminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultGeminiModel     = "gemini-1.5-flash"
	DefaultAnalysisTimeout = 30 * time.Second
)

type Config struct {
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	Host              string
	Port              string
	AllowedOrigins    []string // CORS: from ALLOWED_ORIGINS; "*" allows any caller
	Environment       string   // ENV: production, development, etc.
	LogLevel          string
	Version           string
	AnalysisTimeout   time.Duration
	SeedSampleEntries bool
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", "*"))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return &Config{
		GeminiAPIKey:      strings.TrimSpace(getEnv("GEMINI_API_KEY", "")),
		GeminiModel:       getEnv("GEMINI_MODEL", DefaultGeminiModel),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", DefaultGeminiBaseURL),
		Host:              getEnv("HOST", "0.0.0.0"),
		Port:              getEnv("PORT", "8001"),
		AllowedOrigins:    allowedOrigins,
		Environment:       env,
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Version:           getEnv("APP_VERSION", "1.0.0"),
		AnalysisTimeout:   getEnvAsDuration("ANALYSIS_TIMEOUT", DefaultAnalysisTimeout),
		SeedSampleEntries: getEnvAsBool("SEED_SAMPLE_ENTRIES", false),
	}
}

// Addr is the listen address built from HOST and PORT.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

// AllowsAnyOrigin reports whether CORS is open to every caller.
func (c *Config) AllowsAnyOrigin() bool {
	return containsOrigin(c.AllowedOrigins, "*")
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" && !containsOrigin(out, part) {
			out = append(out, part)
		}
	}
	return out
}

func containsOrigin(list []string, o string) bool {
	o = strings.TrimSpace(strings.ToLower(o))
	for _, v := range list {
		if strings.TrimSpace(strings.ToLower(v)) == o {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
