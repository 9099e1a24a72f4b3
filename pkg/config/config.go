// Package config provides configuration management for the bot list.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the service
type Config struct {
	// MongoDB
	MongoDBURL string
	DBName     string

	// Web Server
	Port string

	// Environment
	Environment string

	// Discord
	BotToken    string
	GuildID     string
	AdminRoleID string

	// Webhooks
	SubmissionsWebhook string
	ReportsWebhook     string
	ErrorWebhook       string
	LogsWebhook        string

	// MQTT
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Staff allowlist (comma separated user ids)
	Staff []string
}

var (
	Version   = "Dev-Local"
	BuildTime = "Hoy"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		// MongoDB
		MongoDBURL: getEnv("mongodbUrl", "mongodb://localhost:27017"),
		DBName:     getEnv("dbName", "PancyList"),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),

		// Discord
		BotToken:    getEnv("botToken", ""),
		GuildID:     getEnv("guildId", ""),
		AdminRoleID: getEnv("adminRoleId", ""),

		// Webhooks
		SubmissionsWebhook: getEnv("webhookUrl", ""),
		ReportsWebhook:     getEnv("reportWebhookUrl", ""),
		ErrorWebhook:       getEnv("errorWebhook", ""),
		LogsWebhook:        getEnv("logsWebhook", ""),

		// MQTT
		MQTTHost:     getEnv("MQTT_Host", "localhost"),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		Staff: splitList(getEnv("staffIds", "")),
	}
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	// Use sync.Once to ensure thread-safe initialization if Load wasn't called
	cfgOnce.Do(loadConfig)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma separated env value, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// IsStaff reports whether the given user id belongs to the staff allowlist.
// The flag is always derived from the list, never stored on the user document.
func (c *Config) IsStaff(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range c.Staff {
		if id == userID {
			return true
		}
	}
	return false
}
