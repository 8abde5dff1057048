package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string
	SeedDemoData bool

	// Owner of the single-user workspace (shown in the header, receives export emails)
	OwnerName  string
	OwnerEmail string

	// AI placeholder generation
	AIGenerationDelay time.Duration
	AIJobTTL          time.Duration
	RedisURL          string // Optional: share generation jobs between instances
	RateLimitRPS      float64
	RateLimitBurst    int

	// Goals
	GoalExpiryInterval time.Duration

	// Email
	EmailFrom    string
	ResendAPIKey string

	// Observability (optional)
	SentryDSN   string
	MetricsUser string
	MetricsPass string

	// Storage for data exports ("local" or "s3")
	StorageDriver    string
	StorageLocalPath string
	S3Region         string
	S3Bucket         string
	S3AccessKey      string
	S3SecretKey      string
	S3Endpoint       string        // Optional: for S3-compatible services (MinIO, DO Spaces, R2, etc.)
	S3PresignExpiry  time.Duration // Lifetime of export download links
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "FitTrack"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/fittrack.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		SeedDemoData: envBool("SEED_DEMO_DATA", true),

		OwnerName:  envString("OWNER_NAME", "Alex Morgan"),
		OwnerEmail: envString("OWNER_EMAIL", "alex@example.com"),

		// AI
		AIGenerationDelay: envDuration("AI_GENERATION_DELAY", 2*time.Second),
		AIJobTTL:          envDuration("AI_JOB_TTL", 30*time.Minute),
		RedisURL:          envString("REDIS_URL", ""),
		RateLimitRPS:      envFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst:    envInt("RATE_LIMIT_BURST", 5),

		GoalExpiryInterval: envDuration("GOAL_EXPIRY_INTERVAL", time.Hour),

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		// Observability
		SentryDSN:   envString("SENTRY_DSN", ""),
		MetricsUser: envString("METRICS_USER", ""),
		MetricsPass: envString("METRICS_PASS", ""),

		// Storage
		StorageDriver:    envString("STORAGE_DRIVER", StorageDriverLocal),
		StorageLocalPath: envString("STORAGE_LOCAL_PATH", "./data/exports"),
		S3Region:         envString("S3_REGION", ""),
		S3Bucket:         envString("S3_BUCKET", ""),
		S3AccessKey:      envString("S3_ACCESS_KEY", ""),
		S3SecretKey:      envString("S3_SECRET_KEY", ""),
		S3Endpoint:       envString("S3_ENDPOINT", ""),
		S3PresignExpiry:  envDuration("S3_PRESIGN_EXPIRY", 24*time.Hour),
	}

	if cfg.StorageDriver == StorageDriverS3 {
		validateS3(cfg)
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
// Development allows email to fall back to log mode for easier local testing.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
}

func validateS3(cfg *Config) {
	missing := []string{}
	for key, value := range map[string]string{
		"S3_REGION":     cfg.S3Region,
		"S3_BUCKET":     cfg.S3Bucket,
		"S3_ACCESS_KEY": cfg.S3AccessKey,
		"S3_SECRET_KEY": cfg.S3SecretKey,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slog.Error("STORAGE_DRIVER=s3 requires S3 settings", "missing", missing)
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config invalid float, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Secrets and connection strings are excluded.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		OwnerName:  c.OwnerName,
		OwnerEmail: c.OwnerEmail,

		AIGenerationDelay: c.AIGenerationDelay,

		EmailFrom: c.EmailFrom,

		StorageDriver: c.StorageDriver,
		S3Endpoint:    c.S3Endpoint, // Needed for CSP policies
	}
}
