package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	AppName      string
	Port         string
	IsProduction bool

	// Advisory (Gemini) settings. An empty GeminiAPIKey disables the
	// advisory features; it is not a startup failure.
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	AdvisorModel   string `mapstructure:"ADVISOR_MODEL"`
	AdvisorTimeout time.Duration

	BaseCurrencyCode string `mapstructure:"BASE_CURRENCY"`
	RateLimit        string `mapstructure:"RATE_LIMIT"`
	SeedDemoData     bool   `mapstructure:"SEED_DEMO_DATA"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("APP_NAME", "khazna")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("ADVISOR_MODEL", "gemini-2.5-flash")
	viper.SetDefault("ADVISOR_TIMEOUT", "10s")
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("SEED_DEMO_DATA", true)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.AppName = viper.GetString("APP_NAME")
	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Advisory features will be disabled.")
	}

	cfg.AdvisorModel = viper.GetString("ADVISOR_MODEL")
	if cfg.AdvisorModel == "" {
		cfg.AdvisorModel = "gemini-2.5-flash"
		log.Printf("Warning: ADVISOR_MODEL not set. Defaulting to %s.\n", cfg.AdvisorModel)
	}

	advisorTimeoutStr := viper.GetString("ADVISOR_TIMEOUT")
	advisorTimeout, err := time.ParseDuration(advisorTimeoutStr)
	if err != nil {
		advisorTimeout = 10 * time.Second
		if advisorTimeoutStr != "" {
			log.Printf("Warning: Invalid value for ADVISOR_TIMEOUT ('%s'). Defaulting to %s.\n", advisorTimeoutStr, advisorTimeout.String())
		}
	}
	cfg.AdvisorTimeout = advisorTimeout

	cfg.BaseCurrencyCode = viper.GetString("BASE_CURRENCY")
	if len(cfg.BaseCurrencyCode) != 3 {
		log.Printf("Warning: Invalid value for BASE_CURRENCY ('%s'). Defaulting to USD.\n", cfg.BaseCurrencyCode)
		cfg.BaseCurrencyCode = "USD"
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.SeedDemoData = viper.GetBool("SEED_DEMO_DATA")

	return cfg, nil
}
