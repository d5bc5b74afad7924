package config

import (
	"os"
	"strconv"
)

type Config struct {
	StoreBackend string // mongo, mysql, postgres or sqlite
	MongoURI     string
	MongoDB      string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	SQLitePath   string
	HistoryCap   int
	HTTPAddr     string
	GinMode      string
	LogLevel     string
}

func Load() *Config {
	return &Config{
		StoreBackend: getEnv("STORE_BACKEND", "mongo"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "remote_work_db"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBUser:       getEnv("DB_USER", "workuser"),
		DBPassword:   getEnv("DB_PASSWORD", "workpassword"),
		DBName:       getEnv("DB_NAME", "remote_work"),
		SQLitePath:   getEnv("SQLITE_PATH", "remote_work.db"),
		HistoryCap:   getEnvInt("HISTORY_CAP", 1000),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
