// Package config loads and validates application configuration from
// environment variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DataFile is the path of the JSON file holding all saved trips.
	// Defaults to "saved_trips.json" in the working directory.
	DataFile string

	// Users maps username → password as configured in USERS, e.g.
	// "tim:some_password,buddy:another_password". Required.
	// Username matching is case-insensitive; passwords are case-sensitive.
	Users map[string]string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TokenTTLHours is the session token lifetime. Defaults to 24.
	TokenTTLHours int

	// OpenAIAPIKey enables the planner AI. Optional — when empty the
	// planner runs in a disabled state and says so instead of failing.
	OpenAIAPIKey string

	// OpenAIModel is the model used for itinerary planning.
	// Defaults to "gpt-5.1".
	OpenAIModel string

	// OpenAIBaseURL overrides the API endpoint, mainly for tests.
	OpenAIBaseURL string
}

// Load reads configuration from the environment (merging in a .env file when
// one exists) and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// A missing .env is the normal case in production; real env vars win
	// either way because godotenv never overrides existing variables.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DataFile:      getEnv("DATA_FILE", "saved_trips.json"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-5.1"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
	}

	var missing []string

	cfg.Users = parseUsers(os.Getenv("USERS"))
	if len(cfg.Users) == 0 {
		missing = append(missing, "USERS")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// parseUsers decodes the USERS value: comma-separated username:password
// pairs. Entries without a colon are ignored. Only the first colon splits,
// so passwords may contain colons.
func parseUsers(s string) map[string]string {
	users := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, password, ok := strings.Cut(pair, ":")
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		users[strings.TrimSpace(name)] = password
	}
	return users
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt is getEnv for integer values; unparsable values fall back too.
func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
