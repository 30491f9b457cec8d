package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "currency-money"
	defaultRateLimit = "100-M"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	JWTSecret          string
	JWTIssuer          string
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
	CurrencySeedFile   string
	LogLevel           slog.Level
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CURRENCY_SEED_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")

	// Environment variables override the .env file, which overrides the defaults.
	v.AutomaticEnv()

	cfg := &Config{
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		CurrencySeedFile: v.GetString("CURRENCY_SEED_FILE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	return cfg, nil
}

// AllowsAllOrigins reports whether CORS is configured with the "*" wildcard.
func (c *Config) AllowsAllOrigins() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
