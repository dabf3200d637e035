package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Document storage backends.
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	MigrationsPath    string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	LoginRateLimit    string
	CORSAllowedOrigin []string

	ProductsFile  string
	CurrencyLabel string

	DocumentStorage    string
	UploadDir          string
	GCSBucket          string
	GCSCredentialsFile string

	AdminUsername string
	AdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "manquants-backend")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("PRODUCTS_FILE", "")
	viper.SetDefault("CURRENCY_LABEL", "XOF")
	viper.SetDefault("DOCUMENT_STORAGE", StorageLocal)
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("GCS_CREDENTIALS_FILE", "")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		MigrationsPath:     viper.GetString("MIGRATIONS_PATH"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTIssuer:          viper.GetString("JWT_ISSUER"),
		LoginRateLimit:     viper.GetString("LOGIN_RATE_LIMIT"),
		ProductsFile:       viper.GetString("PRODUCTS_FILE"),
		CurrencyLabel:      viper.GetString("CURRENCY_LABEL"),
		DocumentStorage:    strings.ToLower(viper.GetString("DOCUMENT_STORAGE")),
		UploadDir:          viper.GetString("UPLOAD_DIR"),
		GCSBucket:          viper.GetString("GCS_BUCKET"),
		GCSCredentialsFile: viper.GetString("GCS_CREDENTIALS_FILE"),
		AdminUsername:      viper.GetString("ADMIN_USERNAME"),
		AdminPassword:      viper.GetString("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigin = append(cfg.CORSAllowedOrigin, origin)
		}
	}

	switch cfg.DocumentStorage {
	case StorageLocal:
	case StorageGCS:
		if cfg.GCSBucket == "" {
			log.Println("Warning: DOCUMENT_STORAGE is gcs but GCS_BUCKET is not set.")
		}
	default:
		log.Printf("Warning: unknown DOCUMENT_STORAGE '%s'. Defaulting to %s.\n", cfg.DocumentStorage, StorageLocal)
		cfg.DocumentStorage = StorageLocal
	}

	if cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_PASSWORD not set. No bootstrap admin account will be created.")
	}

	return cfg, nil
}
