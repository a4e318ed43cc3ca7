package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

type Config struct {
	Env         string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	ServerPort  string
	CORSOrigins []string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// win over it.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: could not load .env: %v", err)
	}

	env := getEnv("APP_ENV", EnvDevelopment)
	defaultDB := "trivia"
	if env == EnvTesting {
		defaultDB = "trivia_test"
	}

	return &Config{
		Env:         env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", defaultDB),
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

// DSN returns DATABASE_URL when set, otherwise a keyword/value DSN built from
// the DB_* parts. Both lib/pq and pgx accept either form.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func (c *Config) GinMode() string {
	switch c.Env {
	case EnvProduction:
		return gin.ReleaseMode
	case EnvTesting:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
