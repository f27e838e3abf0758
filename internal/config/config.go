package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort           string
	AppEnv            string
	AWSRegion         string
	AWSEndpointURL    string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID    string
	AWSSecretKey      string
	DynamoTables      DynamoTables
	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration
	Mail              Mail
	RateLimitRPS      float64
	RateLimitBurst    int
	TrustProxy        bool     // take the client IP from X-Forwarded-For / X-Real-IP
	AllowedOrigins    []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users  string
	Orders string
	Rooms  string
}

// Mail holds the mail relay settings. Username and Password are the
// EMAILER_USER / EMAILER_PASSWORD account credentials.
type Mail struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	ConnPolicy string // "per-send" | "shared"
}

// Load reads all configuration from environment variables.
func Load() *Config {
	user := getEnv("EMAILER_USER", "")
	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:  getEnv("DYNAMO_TABLE_USERS", "users"),
			Orders: getEnv("DYNAMO_TABLE_ORDERS", "orders"),
			Rooms:  getEnv("DYNAMO_TABLE_ROOMS", "rooms"),
		},
		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 168)) * time.Hour,
		Mail: Mail{
			Host:       getEnv("EMAILER_HOST", "smtp.gmail.com"),
			Port:       getEnvInt("EMAILER_PORT", 587),
			Username:   user,
			Password:   getEnv("EMAILER_PASSWORD", ""),
			From:       getEnv("EMAILER_FROM", user),
			ConnPolicy: strings.ToLower(getEnv("EMAILER_CONN_POLICY", "per-send")),
		},
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		TrustProxy:     getEnvBool("TRUST_PROXY", false),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
