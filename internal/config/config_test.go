package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "DATABASE_PATH", "SESSION_SECRET", "GIN_MODE", "REDIS_ADDR", "REDIS_PASSWORD"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr :8080, got %s", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "wiki.db" {
		t.Fatalf("expected default database path, got %s", cfg.DatabasePath)
	}
	if cfg.SessionSecret == "" {
		t.Fatal("expected a default session secret")
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected empty redis addr by default, got %s", cfg.RedisAddr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("SESSION_SECRET", "prod-secret")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	if cfg.ListenAddr != ":9090" {
		t.Fatalf("expected listen addr derived from PORT, got %s", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "/tmp/test.db" {
		t.Fatalf("unexpected database path %s", cfg.DatabasePath)
	}
	if cfg.SessionSecret != "prod-secret" {
		t.Fatalf("unexpected session secret %s", cfg.SessionSecret)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected redis addr %s", cfg.RedisAddr)
	}
}
