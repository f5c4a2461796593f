package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type Config struct {
	Port           string
	Env            string
	Database       DatabaseConfig
	RedisAddr      string
	KafkaBroker    string
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigins []string
	OtelEnabled    bool
	OtelEndpoint   string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: String("PORT", "3000"),
		Env:  String("APP_ENV", "development"),
		Database: DatabaseConfig{
			Host:       String("DB_HOST", "localhost"),
			User:       String("DB_USER", "postgres"),
			Password:   String("DB_PASSWORD", ""),
			Name:       String("DB_NAME", "biztime"),
			Port:       String("DB_PORT", "5432"),
			SSLMode:    String("DB_SSLMODE", "disable"),
			MaxRetries: Int("DB_MAX_RETRIES", 5),
		},
		RedisAddr:      String("REDIS_ADDR", ""),
		KafkaBroker:    String("KAFKA_BROKER", ""),
		RateLimitRPS:   Float("RATE_LIMIT_RPS", 20),
		RateLimitBurst: Int("RATE_LIMIT_BURST", 40),
		AllowedOrigins: List("CORS_ALLOWED_ORIGINS", []string{"*"}),
		OtelEnabled:    Bool("OTEL_ENABLED", false),
		OtelEndpoint:   String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	default:
		return false
	}
}

func String(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func Int(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func Float(name string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func Bool(name string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func List(name string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
