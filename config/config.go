package config

import (
	"crypto/rand"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	SessionSecret  []byte
	AdminEnabled   bool
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxyHeaders takes the client address from X-Forwarded-For / X-Real-IP.
	// Only enable behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
	S3Bucket          string
	S3Region          string
	S3AccessKeyID     string
	S3SecretKey       string
	AssetURLTTL       time.Duration
}

// Load reads the configuration from the environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	secret := []byte(getEnv("SESSION_SECRET", ""))
	if len(secret) == 0 {
		// Sessions do not survive a restart without a configured secret.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("APP_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SessionSecret:     secret,
		AdminEnabled:      getBool("ADMIN_ENABLED", true),
		CORSOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRPS:      getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getInt("RATE_LIMIT_BURST", 20),
		TrustProxyHeaders: getBool("TRUST_PROXY_HEADERS", false),
		S3Bucket:          getEnv("AWS_S3_BUCKET", ""),
		S3Region:          getEnv("AWS_REGION", "ap-northeast-1"),
		S3AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey:       getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AssetURLTTL:       time.Duration(getInt("ASSET_URL_TTL_MINUTES", 15)) * time.Minute,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil && f > 0 {
		return f
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// OptionalEnvVars are reported at startup so you can confirm they are loaded when set.
var OptionalEnvVars = []string{
	"PORT",
	"APP_ENV",
	"LOG_LEVEL",
	"SESSION_SECRET",
	"ADMIN_ENABLED",
	"CORS_ALLOWED_ORIGINS",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"TRUST_PROXY_HEADERS",
	"AWS_S3_BUCKET",
	"AWS_REGION",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"ASSET_URL_TTL_MINUTES",
}

var secretEnvVars = map[string]bool{
	"SESSION_SECRET":        true,
	"AWS_ACCESS_KEY_ID":     true,
	"AWS_SECRET_ACCESS_KEY": true,
}

// ReportEnv logs which optional variables are set. Secret values are never logged.
func ReportEnv(log *slog.Logger) {
	for _, key := range OptionalEnvVars {
		v := strings.TrimSpace(os.Getenv(key))
		switch {
		case v == "":
			log.Debug("env not set (optional)", "key", key)
		case secretEnvVars[key]:
			log.Info("env loaded", "key", key)
		default:
			log.Info("env loaded", "key", key, "value", v)
		}
	}
	if os.Getenv("SESSION_SECRET") == "" {
		log.Warn("SESSION_SECRET not set; visitor selections reset on restart")
	}
}
