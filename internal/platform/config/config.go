package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Outbound email relay
	ResendAPIKey    string
	MailFromAddress string
	SupportEmail    string

	// Profit job
	JobTriggerToken  string
	ProfitRunTimeout time.Duration

	// Rate limit spec for the public contact endpoint, in limiter format
	// (e.g. "5-M" for five requests per minute per IP).
	ContactRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "investment-backend")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("MAIL_FROM_ADDRESS", "Prime Blocks Investments <noreply@primeblockinvestment.org>")
	viper.SetDefault("SUPPORT_EMAIL", "support@primeblockinvestment.org")
	viper.SetDefault("JOB_TRIGGER_TOKEN", "")
	viper.SetDefault("PROFIT_RUN_TIMEOUT", "5m")
	viper.SetDefault("CONTACT_RATE_LIMIT", "5-M")

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
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ResendAPIKey = viper.GetString("RESEND_API_KEY")
	if cfg.ResendAPIKey == "" {
		log.Println("Warning: RESEND_API_KEY not set. Outbound email will be skipped.")
	}
	cfg.MailFromAddress = viper.GetString("MAIL_FROM_ADDRESS")
	cfg.SupportEmail = viper.GetString("SUPPORT_EMAIL")

	cfg.JobTriggerToken = viper.GetString("JOB_TRIGGER_TOKEN")
	if cfg.JobTriggerToken == "" {
		log.Println("Warning: JOB_TRIGGER_TOKEN not set. The profit job endpoint accepts unauthenticated calls.")
	}

	runTimeoutStr := viper.GetString("PROFIT_RUN_TIMEOUT")
	runTimeout, err := time.ParseDuration(runTimeoutStr)
	if err != nil {
		runTimeout = 5 * time.Minute
		log.Printf("Warning: Invalid value for PROFIT_RUN_TIMEOUT ('%s'). Defaulting to %s.\n", runTimeoutStr, runTimeout)
	}
	cfg.ProfitRunTimeout = runTimeout

	cfg.ContactRateLimit = viper.GetString("CONTACT_RATE_LIMIT")

	return cfg, nil
}
