package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the signing key used when JWT_SECRET is unset. It is
// only accepted in development.
const DefaultJWTSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env             string
	ServerPort      string
	DBDriver        string
	DatabaseDSN     string
	ResetDB         bool
	JWTSecret       string
	JWTExpiry       time.Duration
	CORSOrigin      string
	SwaggerHost     string
	ShutdownTimeout time.Duration

	StorageDriver  string
	UploadDir      string
	UploadBaseURL  string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	MaxResumeBytes int64
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first when present; real environment
// variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:             getEnv("APP_ENV", "development"),
		ServerPort:      getEnv("SERVER_PORT", "5000"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DatabaseDSN:     getEnv("DATABASE_DSN", "jobportal.db"),
		ResetDB:         os.Getenv("RESET_DB") == "true",
		JWTSecret:       getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiry:       getEnvDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:5173"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		UploadBaseURL:  getEnv("UPLOAD_BASE_URL", "/uploads"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		MaxResumeBytes: int64(getEnvInt("MAX_RESUME_BYTES", 10<<20)),
	}
}

// IsDevelopment reports whether the app runs with APP_ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects settings that are unsafe outside development.
func (c *Config) Validate() error {
	if c.JWTSecret == DefaultJWTSecret && !c.IsDevelopment() {
		return errors.New("JWT_SECRET must be set when APP_ENV is not development")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("90m", "168h") and whole days ("7d").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := ParseDuration(v); err == nil {
		return d
	}
	return def
}

// ParseDuration extends time.ParseDuration with an "Nd" form for days.
func ParseDuration(v string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(v, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(v)
}
