package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Secret untuk sign & verify JWT. Dipusatkan di sini supaya handler login
// dan middleware Auth pakai key yang SAMA PERSIS.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia-makan-siang"))
}
