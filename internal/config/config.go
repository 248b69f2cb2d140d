package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string
	RedisAddr  string

	// Push (OneSignal). Sem as duas, notificações ficam desativadas.
	OneSignalAppID  string
	OneSignalAPIKey string
}

func Load() *Config {
	return &Config{
		DBUrl:      mustGetEnv("DATABASE_URL"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),

		OneSignalAppID:  getEnv("ONESIGNAL_APP_ID", ""),
		OneSignalAPIKey: getEnv("ONESIGNAL_API_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return v
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) NotificationsEnabled() bool {
	return c.OneSignalAppID != "" && c.OneSignalAPIKey != ""
}
