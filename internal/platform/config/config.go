package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret       string
	JWTIssuer       string
	SessionDuration time.Duration

	InviteValidityDuration time.Duration

	UploadDir      string
	MaxUploadBytes int64

	CORSAllowedOrigins []string

	DefaultAdminUsername string
	DefaultAdminEmail    string
	DefaultAdminPassword string
	DefaultAdminFullName string

	PostHogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "surgery-clinic-app")
	viper.SetDefault("SESSION_DURATION", "12h")
	viper.SetDefault("INVITE_VALIDITY_DURATION", "168h")
	viper.SetDefault("UPLOAD_DIR", "./uploads/medical_files")
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(50*1024*1024))
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DEFAULT_ADMIN_USERNAME", "admin")
	viper.SetDefault("DEFAULT_ADMIN_EMAIL", "admin@clinic.local")
	viper.SetDefault("DEFAULT_ADMIN_PASSWORD", "admin123")
	viper.SetDefault("DEFAULT_ADMIN_FULL_NAME", "مدير النظام")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	sessionDurationStr := viper.GetString("SESSION_DURATION")
	sessionDuration, err := time.ParseDuration(sessionDurationStr)
	if err != nil {
		sessionDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_DURATION ('%s'). Defaulting to %s.\n", sessionDurationStr, sessionDuration.String())
	}
	cfg.SessionDuration = sessionDuration

	inviteValidityStr := viper.GetString("INVITE_VALIDITY_DURATION")
	inviteValidity, err := time.ParseDuration(inviteValidityStr)
	if err != nil {
		inviteValidity = 7 * 24 * time.Hour
		log.Printf("Warning: Invalid value for INVITE_VALIDITY_DURATION ('%s'). Defaulting to %s.\n", inviteValidityStr, inviteValidity.String())
	}
	cfg.InviteValidityDuration = inviteValidity

	cfg.UploadDir = viper.GetString("UPLOAD_DIR")
	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 50 * 1024 * 1024
		log.Printf("Warning: MAX_UPLOAD_BYTES must be positive. Defaulting to %d.\n", cfg.MaxUploadBytes)
	}

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	cfg.DefaultAdminUsername = viper.GetString("DEFAULT_ADMIN_USERNAME")
	cfg.DefaultAdminEmail = viper.GetString("DEFAULT_ADMIN_EMAIL")
	cfg.DefaultAdminPassword = viper.GetString("DEFAULT_ADMIN_PASSWORD")
	cfg.DefaultAdminFullName = viper.GetString("DEFAULT_ADMIN_FULL_NAME")
	if cfg.DefaultAdminPassword == "admin123" {
		log.Println("Warning: DEFAULT_ADMIN_PASSWORD not set. Using default insecure password. THIS IS NOT FOR PRODUCTION.")
	}

	cfg.PostHogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
