package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string

	// Customer service lookup and its resilience policy.
	CustomerServiceURL       string
	CustomerTimeout          time.Duration
	CustomerRetryAttempts    int
	CustomerBreakerThreshold int
	CustomerBreakerCooldown  time.Duration

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/credits?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),

		CustomerServiceURL:       getEnv("CUSTOMER_SERVICE_URL", "http://localhost:8081"),
		CustomerTimeout:          getEnvSeconds("CUSTOMER_TIMEOUT_SECONDS", 2),
		CustomerRetryAttempts:    getEnvInt("CUSTOMER_RETRY_ATTEMPTS", 3),
		CustomerBreakerThreshold: getEnvInt("CUSTOMER_BREAKER_THRESHOLD", 5),
		CustomerBreakerCooldown:  getEnvSeconds("CUSTOMER_BREAKER_COOLDOWN_SECONDS", 30),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvSeconds(key string, def int) time.Duration {
	return time.Duration(getEnvInt(key, def)) * time.Second
}
