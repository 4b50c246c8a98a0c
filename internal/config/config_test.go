package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "portfolio")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_DRIVER", "memory")
}

func TestFromEnv_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Database.Driver != DriverMemory {
		t.Fatalf("expected memory driver, got %s", cfg.Database.Driver)
	}
	if cfg.App.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.App.LogLevel)
	}
	if len(cfg.App.CORSAllowOrigins) != 1 || cfg.App.CORSAllowOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins: %v", cfg.App.CORSAllowOrigins)
	}
	if cfg.Cache.Enabled {
		t.Fatalf("cache must be disabled by default")
	}
	if cfg.Cache.TTL != 600*time.Second {
		t.Fatalf("unexpected cache ttl: %s", cfg.Cache.TTL)
	}
	if !cfg.Database.RunMigrations || cfg.Database.RunSeeders {
		t.Fatalf("unexpected migration/seeder defaults")
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DB_DRIVER", "memory")

	_, err := FromEnv()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP_PORT") {
		t.Fatalf("expected HTTP_PORT in error, got %v", err)
	}
}

func TestFromEnv_PostgresRequiresConnection(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")

	_, err := FromEnv()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestFromEnv_InvalidValues(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REDIS_ENABLED", "maybe")
	t.Setenv("DB_POOL_MAX_CONNS", "ten")

	_, err := FromEnv()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "REDIS_ENABLED") || !strings.Contains(err.Error(), "DB_POOL_MAX_CONNS") {
		t.Fatalf("expected both keys in error, got %v", err)
	}
}

func TestFromEnv_CORSList(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://example.dev ,")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cfg.App.CORSAllowOrigins) != 2 || cfg.App.CORSAllowOrigins[1] != "https://example.dev" {
		t.Fatalf("unexpected origins: %v", cfg.App.CORSAllowOrigins)
	}
}
