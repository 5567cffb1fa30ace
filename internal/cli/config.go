package cli

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds CLI configuration
type Config struct {
	Storage     string
	ScoreFile   string
	RedisURL    string
	Strategy    string
	Seed        int64
	LogFile     string
	QuietPauses bool
	Verbose     bool
}

// DefaultConfig returns a Config with default values, reading STANDOFF_*
// environment variables so flags stay optional.
func DefaultConfig() *Config {
	return &Config{
		Storage:     getEnvOrDefault("STANDOFF_STORAGE", "file"),
		ScoreFile:   os.Getenv("STANDOFF_SCORE_FILE"),
		RedisURL:    os.Getenv("STANDOFF_REDIS_URL"),
		Strategy:    getEnvOrDefault("STANDOFF_STRATEGY", "aggressive"),
		Seed:        getEnvInt64("STANDOFF_SEED", 0),
		LogFile:     getEnvOrDefault("STANDOFF_LOG_FILE", defaultLogFile()),
		QuietPauses: false,
		Verbose:     false,
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cosmicstandoff", "game.log")
	}
	return filepath.Join(home, ".cosmicstandoff", "game.log")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return parsed
}
