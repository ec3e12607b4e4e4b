package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI       string
	MongoDBName    string
	RedisURI       string
	AdminPassword  string
	Port           string
	APKPath        string   // Local path of the APK uploaded via POST /api/apk
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL; must include production frontend origin
}

func Load() *Config {
	// CORS: allow multiple origins so the production frontend works alongside local dev
	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		if u := strings.TrimSpace(getEnv("FRONTEND_URL", "http://localhost:3000")); u != "" {
			allowedOrigins = append(allowedOrigins, u)
		}
	}

	return &Config{
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "")),
		MongoDBName:    getEnv("MONGODB_DB", "portfolio"),
		RedisURI:       getEnv("REDIS_URI", ""),
		AdminPassword:  getEnv("ADMIN_PW", ""),
		Port:           getEnv("PORT", "8080"),
		APKPath:        getEnv("APK_PATH", "public/AgriFarm.apk"),
		AllowedOrigins: allowedOrigins,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
