package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "BUDGET_STORE", "DATA_DIR", "SQLITE_PATH", "JWT_EXPIRES_IN", "AMQP_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.DBDriver)
	}
	if cfg.BudgetStore != BudgetStoreFile {
		t.Errorf("expected file budget store, got %s", cfg.BudgetStore)
	}
	if cfg.SQLitePath != "data/moneybook.db" {
		t.Errorf("expected sqlite path under data dir, got %s", cfg.SQLitePath)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("expected 24h expiry, got %s", cfg.JWTExpirationDur)
	}
	if cfg.AMQPURL != "" {
		t.Errorf("expected publishing disabled by default, got %s", cfg.AMQPURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("BUDGET_STORE", "db")
	t.Setenv("DATA_DIR", "/var/lib/moneybook")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("JWT_EXPIRES_IN", "90m")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DBDriver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.DBDriver)
	}
	if cfg.BudgetStore != BudgetStoreDB {
		t.Errorf("expected db budget store, got %s", cfg.BudgetStore)
	}
	if cfg.SQLitePath != "/var/lib/moneybook/moneybook.db" {
		t.Errorf("unexpected sqlite path %s", cfg.SQLitePath)
	}
	if cfg.JWTExpirationDur != 90*time.Minute {
		t.Errorf("expected 90m expiry, got %s", cfg.JWTExpirationDur)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected fallback shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadRejectsUnknownBudgetStore(t *testing.T) {
	t.Setenv("BUDGET_STORE", "s3")

	cfg, _ := Load()
	if cfg.BudgetStore != BudgetStoreFile {
		t.Errorf("expected fallback to file store, got %s", cfg.BudgetStore)
	}
}
