// Package config reads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings.
type Config struct {
	APIURL *url.URL
	Port   string

	DBPath   string
	Location *time.Location

	JWTSecret     []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	CORSOrigins   []string
	EnablePprof   bool
	SentryDSN     string
	SentryEnv     string
	LogFormat     string
	timezoneName  string
	rawAPIURL     string
	parseProblems []string
}

// minSecretLength is the minimum JWT secret size for HS256.
const minSecretLength = 32

// LoadDotenv loads variables from the given files into the environment.
// Variables already set are not overwritten, missing files are ignored.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return nil
}

// Load reads the configuration from the environment and applies defaults.
// Call Validate on the result before using it.
func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "data/fincontrol.db"),
		timezoneName: getEnv("APP_TIMEZONE", "UTC"),
		rawAPIURL:    os.Getenv("API_URL"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		CORSOrigins:  strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:  os.Getenv("ENABLE_PPROF") == "true",
		SentryDSN:    os.Getenv("SENTRY_DSN"),
		SentryEnv:    getEnv("SENTRY_ENVIRONMENT", "production"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
	}

	cfg.AccessTTL = cfg.getEnvDuration("JWT_ACCESS_TTL", 15*time.Minute)
	cfg.RefreshTTL = cfg.getEnvDuration("JWT_REFRESH_TTL", 7*24*time.Hour)

	if loc, err := time.LoadLocation(cfg.timezoneName); err == nil {
		cfg.Location = loc
	} else {
		cfg.parseProblems = append(cfg.parseProblems, fmt.Sprintf("invalid APP_TIMEZONE '%s': %v", cfg.timezoneName, err))
	}

	if cfg.rawAPIURL != "" {
		if u, err := url.Parse(cfg.rawAPIURL); err == nil {
			cfg.APIURL = u
		} else {
			cfg.parseProblems = append(cfg.parseProblems, fmt.Sprintf("invalid API_URL '%s': %v", cfg.rawAPIURL, err))
		}
	}

	return cfg
}

// Validate validates the configuration and returns an error listing every problem found.
func (c *Config) Validate() error {
	problems := append([]string{}, c.parseProblems...)

	if c.rawAPIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if c.APIURL != nil && (c.APIURL.Scheme == "" || c.APIURL.Host == "") {
		problems = append(problems, fmt.Sprintf("API_URL '%s' must be an absolute URL", c.rawAPIURL))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}

	if len(c.JWTSecret) < minSecretLength {
		problems = append(problems, fmt.Sprintf("JWT_SECRET must be at least %d bytes long", minSecretLength))
	}

	if c.AccessTTL <= 0 {
		problems = append(problems, "JWT_ACCESS_TTL must be positive")
	}

	if c.RefreshTTL <= c.AccessTTL {
		problems = append(problems, "JWT_REFRESH_TTL must be longer than JWT_ACCESS_TTL")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		c.parseProblems = append(c.parseProblems, fmt.Sprintf("invalid %s '%s': %v", key, value, err))
		return defaultValue
	}

	return d
}
