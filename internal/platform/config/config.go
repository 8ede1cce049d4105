package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// PlotMatchPolicy decides what happens when an assigned plot number does not exist.
type PlotMatchPolicy string

const (
	// PlotMatchLenient skips unknown plot numbers.
	PlotMatchLenient PlotMatchPolicy = "lenient"
	// PlotMatchStrict fails the whole mutation on an unknown plot number.
	PlotMatchStrict PlotMatchPolicy = "strict"
)

// OverpaymentPolicy decides what happens when payments exceed the amount due.
type OverpaymentPolicy string

const (
	// OverpaymentClamp accepts the payment and clamps the balance at zero.
	OverpaymentClamp OverpaymentPolicy = "clamp"
	// OverpaymentReject refuses a payment that would overpay the account.
	OverpaymentReject OverpaymentPolicy = "reject"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Bootstrap admin, created on startup when both are set
	AdminEmail    string
	AdminPassword string

	CORSAllowedOrigins []string
	LoginRateLimit     string // ulule/limiter formatted rate, e.g. "5-M"
	RedisURL           string // Optional; rate limiter uses memory when empty

	PlotMatchPolicy   PlotMatchPolicy
	OverpaymentPolicy OverpaymentPolicy
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "plot-sales-admin")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PLOT_MATCH_POLICY", string(PlotMatchLenient))
	viper.SetDefault("OVERPAYMENT_POLICY", string(OverpaymentClamp))

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "plot-sales-admin"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_EMAIL or ADMIN_PASSWORD not set. No bootstrap admin will be created.")
	}

	cfg.CORSAllowedOrigins = splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.PlotMatchPolicy = PlotMatchPolicy(strings.ToLower(viper.GetString("PLOT_MATCH_POLICY")))
	if cfg.PlotMatchPolicy != PlotMatchLenient && cfg.PlotMatchPolicy != PlotMatchStrict {
		log.Printf("Warning: Invalid value for PLOT_MATCH_POLICY ('%s'). Defaulting to %s.\n", cfg.PlotMatchPolicy, PlotMatchLenient)
		cfg.PlotMatchPolicy = PlotMatchLenient
	}

	cfg.OverpaymentPolicy = OverpaymentPolicy(strings.ToLower(viper.GetString("OVERPAYMENT_POLICY")))
	if cfg.OverpaymentPolicy != OverpaymentClamp && cfg.OverpaymentPolicy != OverpaymentReject {
		log.Printf("Warning: Invalid value for OVERPAYMENT_POLICY ('%s'). Defaulting to %s.\n", cfg.OverpaymentPolicy, OverpaymentClamp)
		cfg.OverpaymentPolicy = OverpaymentClamp
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.JWTExpiryDuration = jwtExpiryDuration

	return cfg, nil
}

func splitOrigins(raw string) []string {
	origins := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
