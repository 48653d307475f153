package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL        string
	ServerPort    string
	SessionSecret string
	CookieSecure  bool

	CORSAllowedOrigins []string

	RedisURL    string
	DatabaseURL string
	LogLevel    string

	SearchDebounce  time.Duration
	LoginRatePerSec float64
	LoginBurst      int

	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	AWSAccessKeyID string
	AWSSecretKey   string

	MercadoPagoAccessToken string
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:        strings.TrimRight(getEnv("API_URL", "http://localhost:8000/api"), "/"),
		ServerPort:    getEnv("SERVER_PORT", "3000"),
		SessionSecret: getEnv("SESSION_SECRET", "changeme"),
		CookieSecure:  getEnvAsBool("COOKIE_SECURE", false),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		SearchDebounce:  time.Duration(getEnvAsInt("SEARCH_DEBOUNCE_MS", 500)) * time.Millisecond,
		LoginRatePerSec: getEnvAsFloat("LOGIN_RATE_PER_SEC", 1),
		LoginBurst:      getEnvAsInt("LOGIN_BURST", 5),

		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvAsFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

// getEnvAsList separa por vírgula e ignora itens vazios.
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvAsBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// MediaMirrorEnabled indica se as imagens enviadas também vão para o S3.
func (c *Config) MediaMirrorEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) PixEnabled() bool {
	return c.MercadoPagoAccessToken != ""
}
