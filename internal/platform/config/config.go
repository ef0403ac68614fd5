package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string
	JWTIssuer      string

	// Stripe
	StripeSecretKey      string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret  string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	StripeDefaultCountry string `mapstructure:"STRIPE_DEFAULT_COUNTRY"`
	DefaultCurrency      string `mapstructure:"DEFAULT_CURRENCY"`

	// TransferCreatedSettles marks deposits SUCCESS on transfer.created. Current Stripe API
	// versions send no transfer.paid for transfers to connected accounts.
	TransferCreatedSettles bool `mapstructure:"STRIPE_TRANSFER_CREATED_SETTLES"`
	// PlatformAdminUserIDs may create payouts from the platform balance.
	PlatformAdminUserIDs []string `mapstructure:"PLATFORM_ADMIN_USER_IDS"`

	// Timeouts and reconciler retries
	GatewayTimeout        time.Duration
	StoreTimeout          time.Duration
	ReconcileMaxRetries   int
	ReconcileRetryBackoff time.Duration

	// Optional integrations
	RedisURL         string `mapstructure:"REDIS_URL"`
	EventDedupTTL    time.Duration
	WebhookRateLimit string `mapstructure:"WEBHOOK_RATE_LIMIT"` // ulule/limiter format, e.g. "100-S"
	FrontendBaseURL  string `mapstructure:"FRONTEND_BASE_URL"`
	PosthogAPIKey    string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "stripe-wallet-app")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	v.SetDefault("STRIPE_DEFAULT_COUNTRY", "US")
	v.SetDefault("DEFAULT_CURRENCY", "usd")
	v.SetDefault("STRIPE_TRANSFER_CREATED_SETTLES", false)
	v.SetDefault("PLATFORM_ADMIN_USER_IDS", "")
	v.SetDefault("GATEWAY_TIMEOUT", "15s")
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("RECONCILE_MAX_RETRIES", 3)
	v.SetDefault("RECONCILE_RETRY_BACKOFF", "200ms")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("EVENT_DEDUP_TTL", "72h")
	v.SetDefault("WEBHOOK_RATE_LIMIT", "100-S")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	v.SetDefault("POSTHOG_API_KEY", "")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		StripeSecretKey:      v.GetString("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:  v.GetString("STRIPE_WEBHOOK_SECRET"),
		StripeDefaultCountry: v.GetString("STRIPE_DEFAULT_COUNTRY"),
		DefaultCurrency:      v.GetString("DEFAULT_CURRENCY"),
		ReconcileMaxRetries:  v.GetInt("RECONCILE_MAX_RETRIES"),
		RedisURL:             v.GetString("REDIS_URL"),
		WebhookRateLimit:     v.GetString("WEBHOOK_RATE_LIMIT"),
		FrontendBaseURL:      v.GetString("FRONTEND_BASE_URL"),
		PosthogAPIKey:        v.GetString("POSTHOG_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.TransferCreatedSettles = v.GetBool("STRIPE_TRANSFER_CREATED_SETTLES")
	cfg.PlatformAdminUserIDs = splitList(v.GetString("PLATFORM_ADMIN_USER_IDS"))

	cfg.GatewayTimeout = durationOr(v, "GATEWAY_TIMEOUT", 15*time.Second)
	cfg.StoreTimeout = durationOr(v, "STORE_TIMEOUT", 5*time.Second)
	cfg.ReconcileRetryBackoff = durationOr(v, "RECONCILE_RETRY_BACKOFF", 200*time.Millisecond)
	cfg.EventDedupTTL = durationOr(v, "EVENT_DEDUP_TTL", 72*time.Hour)

	if cfg.ReconcileMaxRetries < 1 {
		log.Printf("Warning: RECONCILE_MAX_RETRIES must be at least 1 (got %d). Defaulting to 3.\n", cfg.ReconcileMaxRetries)
		cfg.ReconcileMaxRetries = 3
	}

	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set. Gateway calls will fail.")
	}
	if cfg.StripeWebhookSecret == "" {
		if cfg.IsProduction {
			return nil, errors.New("STRIPE_WEBHOOK_SECRET is required in production")
		}
		log.Println("Warning: STRIPE_WEBHOOK_SECRET not set. Webhook signatures cannot be verified.")
	}

	return cfg, nil
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
