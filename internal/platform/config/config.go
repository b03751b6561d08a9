package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	DataDir         string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	DefaultCurrency string
	DefaultLanguage string
	RateLimit       string
	CORSOrigins     []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("DEFAULT_LANGUAGE", "en")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		DataDir:         viper.GetString("DATA_DIR"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		RedisDB:         viper.GetInt("REDIS_DB"),
		DefaultCurrency: viper.GetString("DEFAULT_CURRENCY"),
		DefaultLanguage: viper.GetString("DEFAULT_LANGUAGE"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		CORSOrigins:     viper.GetStringSlice("CORS_ORIGINS"),
	}

	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Preferences will not survive restarts.")
	}

	return cfg, nil
}
