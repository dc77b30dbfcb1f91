package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBMaxConns int

	JWTSecret      string
	AdminUsernames []string
	AdminAuth      bool

	CORSAllowedOrigins []string
	RateLimitPerMin    int

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL time.Duration
}

// LoadEnv reads settings from the process environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: envString("APP_ADDR", ":3000"),
		GinMode: envString("GIN_MODE", ""),

		DBHost:     envString("DB_HOST", "127.0.0.1"),
		DBPort:     envString("DB_PORT", "3306"),
		DBUser:     envString("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envString("DB_NAME", "FlickTickets"),
		DBMaxConns: envInt("DB_MAX_CONNS", 10),

		JWTSecret:      envString("JWT_SECRET", "flicktickets-dev-secret"),
		AdminUsernames: envList("ADMIN_USERNAMES"),
		AdminAuth:      envBool("ADMIN_AUTH", true),

		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS"),
		RateLimitPerMin:    envInt("RATE_LIMIT_PER_MIN", 30),

		RedisAddr:       envString("REDIS_ADDR", ""),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
		CatalogCacheTTL: envDuration("CATALOG_CACHE_TTL", 5*time.Minute),
	}
}

func envString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// envList splits a comma separated value, dropping blanks.
func envList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
