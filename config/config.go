package config

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultPort                 = "8080"
	DefaultAccessTokenExpiryMin = 15
	DefaultLoginMaxAttempts     = 10
	DefaultLoginWindowSeconds   = 60
	DefaultForecastCacheTTLMin  = 15
	DefaultForecastHistoryDays  = 90
	DefaultPredictMaxDays       = 30
)

type Config struct {
	Env                 string
	Port                string
	DBURL               string
	AccessTokenSecret   string
	AccessExpiryMin     int
	LoginMaxAttempts    int
	LoginWindowSeconds  int
	RedisAddr           string
	ForecastCacheTTLMin int
	ForecastHistoryDays int
	PredictMaxDays      int
}

// Load reads configuration from config/.env.dev or config/.env.prod
// (selected by ENV), with real environment variables taking precedence
// over file values. Missing required keys are fatal.
func Load() *Config {
	env := getEnv("ENV", "development")
	vals := loadEnvFile(envFilename(env))

	return &Config{
		Env:                 env,
		Port:                vals.get("PORT", DefaultPort),
		DBURL:               vals.must("DB_URL"),
		AccessTokenSecret:   vals.must("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:     vals.getInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		LoginMaxAttempts:    vals.getInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LoginWindowSeconds:  vals.getInt("LOGIN_WINDOW_SECONDS", DefaultLoginWindowSeconds),
		RedisAddr:           vals.get("REDIS_ADDR", ""),
		ForecastCacheTTLMin: vals.getInt("FORECAST_CACHE_TTL_MIN", DefaultForecastCacheTTLMin),
		ForecastHistoryDays: vals.getInt("FORECAST_HISTORY_DAYS", DefaultForecastHistoryDays),
		PredictMaxDays:      vals.getInt("PREDICT_MAX_DAYS", DefaultPredictMaxDays),
	}
}

func envFilename(env string) string {
	if env == "production" {
		return filepath.Join("config", ".env.prod")
	}
	return filepath.Join("config", ".env.dev")
}

// fileValues holds key/value pairs parsed from an env file. Lookups always
// prefer the process environment over the file.
type fileValues map[string]string

func loadEnvFile(path string) fileValues {
	vals := fileValues{}

	f, err := os.Open(path)
	if err != nil {
		// File is optional; env vars alone can carry the config.
		return vals
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		vals[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return vals
}

func (v fileValues) get(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value, ok := v[key]; ok && value != "" {
		return value
	}
	return fallback
}

func (v fileValues) must(key string) string {
	if value := v.get(key, ""); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func (v fileValues) getInt(key string, fallback int) int {
	valStr := v.get(key, "")
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return val
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
