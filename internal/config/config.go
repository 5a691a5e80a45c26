package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ServerPort string
	JWTSecret  string

	// DevBypass disables every participant-store read and write and treats
	// each submission as a fresh participant.
	DevBypass bool

	DiscordInviteURL  string
	DiscordWebhookURL string
}

func Load() *Config {
	return &Config{
		DBHost:            getEnv("DB_HOST", ""),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "codeolympics"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "super-secret-key-change-me"),
		DevBypass:         getBoolEnv("DEV_BYPASS", false),
		DiscordInviteURL:  getEnv("DISCORD_INVITE_URL", "https://discord.com/invite/xfYPDZYqeh"),
		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return val
}
