package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "DB_NAME", "ADMIN_AUTH", "ADMIN_USERNAMES", "CATALOG_CACHE_TTL", "RATE_LIMIT_PER_MIN"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()
	if env.AppAddr != ":3000" || env.DBName != "FlickTickets" || !env.AdminAuth {
		t.Fatalf("unexpected defaults %+v", env)
	}
	if env.CatalogCacheTTL != 5*time.Minute || env.RateLimitPerMin != 30 || env.AdminUsernames != nil {
		t.Fatalf("unexpected defaults %+v", env)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_USERNAMES", " root, ,ops ")
	t.Setenv("ADMIN_AUTH", "false")
	t.Setenv("CATALOG_CACHE_TTL", "90s")
	t.Setenv("RATE_LIMIT_PER_MIN", "not-a-number")

	env := LoadEnv()
	if len(env.AdminUsernames) != 2 || env.AdminUsernames[0] != "root" || env.AdminUsernames[1] != "ops" {
		t.Fatalf("unexpected admin list %q", env.AdminUsernames)
	}
	if env.AdminAuth || env.CatalogCacheTTL != 90*time.Second || env.RateLimitPerMin != 30 {
		t.Fatalf("unexpected overrides %+v", env)
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(Env{DBUser: "app", DBPassword: "pw", DBHost: "db", DBPort: "3306", DBName: "FlickTickets"})
	if !strings.HasPrefix(dsn, "app:pw@tcp(db:3306)/FlickTickets?") || !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("unexpected dsn %q", dsn)
	}
}
