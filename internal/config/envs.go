package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the edit server's configuration values.
type Config struct {
	AppPort      string  // HTTP listen port
	LotsFile     string  // JSON file with the lot calculator definitions
	LotKey       string  // lot key the default floor is initialized with
	DatabasePath string  // SQLite file for floor persistence
	FloorCount   int     // number of stacked floors to create
	FloorHeight  float64 // elevation step between floors
	Debug        bool    // enables verbose grid logging
}

// Load reads configuration from the environment, with a best-effort .env
// file on top. Every value has a workable default.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Config{
		AppPort:      getEnv("APP_PORT", "8080"),
		LotsFile:     getEnv("LOTS_FILE", "content/lots.json"),
		LotKey:       getEnv("LOT_KEY", "default-lot"),
		DatabasePath: getEnv("DB_PATH", "floorgrid.db"),
		FloorCount:   getEnvInt("FLOOR_COUNT", 1),
		FloorHeight:  getEnvFloat("FLOOR_HEIGHT", 100),
		Debug:        getEnvBool("DEBUG", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %f", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, value, fallback)
		return fallback
	}
	return parsed
}
