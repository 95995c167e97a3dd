package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa todo lo que el servicio lee del entorno.
type Config struct {
	Addr string

	// DBDSN vacío => repos in-memory (modo dev).
	DBDSN string

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	S3Bucket        string
	// S3BaseURL sin "/" final se normaliza agregándola (ver s3store.NewWithClient).
	S3BaseURL       string
	AWSRegion       string
	S3Endpoint      string
	S3UploadTimeout time.Duration

	LoginRatePerMinute int

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load carga .env si existe (no es error que falte) y luego lee el entorno.
func Load() Config {
	_ = godotenv.Load()

	addr := ":8080"
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		addr = ":" + v
	}

	return Config{
		Addr:               addr,
		DBDSN:              getEnv("DB_DSN", ""),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		SessionTTL:         getEnvDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:       getEnvBool("COOKIE_SECURE", false),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3BaseURL:          getEnv("S3_BASE_URL", ""),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		S3UploadTimeout:    getEnvDuration("S3_UPLOAD_TIMEOUT", 30*time.Second),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MIN", 10),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		AppName:            getEnv("APP_NAME", "cat-collector"),
	}
}

// ObjectStoreConfigured indica si hay bucket y base URL para fotos.
func (c Config) ObjectStoreConfigured() bool {
	return c.S3Bucket != "" && c.S3BaseURL != ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
