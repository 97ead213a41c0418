package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port           string
	FrontendOrigin string
	UploadDir      string
	AppEnv         string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load reads a .env file when present, then resolves every setting from the
// environment with hardcoded fallbacks.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("DB_HOST", "postgres")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "onboarding")
	v.SetDefault("DB_SSLMODE", "disable")

	return &Config{
		Port:           v.GetString("PORT"),
		FrontendOrigin: v.GetString("FRONTEND_URL"),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		AppEnv:         v.GetString("APP_ENV"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
	}
}

// Development reports whether error details may be included in responses.
func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
