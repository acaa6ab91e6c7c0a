package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/roomly/booking-backend/internal/pricing"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"dev"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	ProdOrigins string `envconfig:"PROD_ORIGINS" default:""`
	DataFile    string `envconfig:"DATA_FILE" default:"data/bookings.json"`

	PeakMultiplier        float64 `envconfig:"PEAK_MULTIPLIER" default:"1.5"`
	OffPeakMultiplier     float64 `envconfig:"OFF_PEAK_MULTIPLIER" default:"1"`
	PeakWindows           string  `envconfig:"PEAK_WINDOWS" default:"10:00-13:00,16:00-19:00"`
	PeakWeekdays          string  `envconfig:"PEAK_WEEKDAYS" default:"1,2,3,4,5"`
	TimezoneOffsetMinutes int     `envconfig:"PRICING_TZ_OFFSET_MINUTES" default:"330"`
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == prodString
}

// Pricing materializes the peak-rate schedule from the raw env strings.
func (c *Config) Pricing() pricing.Config {
	return pricing.Config{
		PeakMultiplier:        c.PeakMultiplier,
		OffPeakMultiplier:     c.OffPeakMultiplier,
		PeakWeekdays:          pricing.ParseWeekdays(c.PeakWeekdays),
		PeakWindows:           pricing.ParseWindows(c.PeakWindows),
		TimezoneOffsetMinutes: c.TimezoneOffsetMinutes,
	}
}
