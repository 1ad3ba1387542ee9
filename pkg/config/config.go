package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration

	// Payroll configuration shared by all workers.
	StandardWorkHoursPerDay int
	WorkDaysPerMonth        int

	// Requests per minute allowed per client IP.
	RateLimitPerMinute int
}

// LoadConfig loads configuration from environment variables and a .env
// file if present. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("STANDARD_WORK_HOURS_PER_DAY", 8)
	viper.SetDefault("WORK_DAYS_PER_MONTH", 30)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.StandardWorkHoursPerDay = viper.GetInt("STANDARD_WORK_HOURS_PER_DAY")
	if cfg.StandardWorkHoursPerDay <= 0 {
		log.Printf("Warning: STANDARD_WORK_HOURS_PER_DAY must be positive, got %d. Defaulting to 8.\n", cfg.StandardWorkHoursPerDay)
		cfg.StandardWorkHoursPerDay = 8
	}
	cfg.WorkDaysPerMonth = viper.GetInt("WORK_DAYS_PER_MONTH")
	if cfg.WorkDaysPerMonth <= 0 {
		log.Printf("Warning: WORK_DAYS_PER_MONTH must be positive, got %d. Defaulting to 30.\n", cfg.WorkDaysPerMonth)
		cfg.WorkDaysPerMonth = 30
	}

	cfg.RateLimitPerMinute = viper.GetInt("RATE_LIMIT_PER_MINUTE")

	return cfg, nil
}
