package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr  string
	RedisAddr string
	RedisPass string

	// Demo dataset profile
	DemoContacts      int
	DemoConversations int
	DemoDeals         int
	DemoActivities    int

	// Facade
	AutoReplyDelay time.Duration
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8000"),
		RedisAddr: getEnv("REDIS_ADDR", "redis-crmdemo:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		DemoContacts:      getEnvInt("DEMO_CONTACTS", 50),
		DemoConversations: getEnvInt("DEMO_CONVERSATIONS", 20),
		DemoDeals:         getEnvInt("DEMO_DEALS", 15),
		DemoActivities:    getEnvInt("DEMO_ACTIVITIES", 10),

		AutoReplyDelay: getEnvDuration("DEMO_AUTO_REPLY_DELAY", 2*time.Second),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
