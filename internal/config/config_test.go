package config_test

import (
	"testing"

	"task-manager/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != "0.0.0.0:3000" {
		t.Fatalf("unexpected default addr: %s", cfg.Server.Addr)
	}
	if cfg.Database.Path != "data/taskmanager.db" {
		t.Fatalf("unexpected default db path: %s", cfg.Database.Path)
	}
	if cfg.Auth.TokenTTLMinutes != 0 {
		t.Fatalf("expected unbounded tokens by default, got %d", cfg.Auth.TokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 8 {
		t.Fatalf("unexpected default bcrypt cost: %d", cfg.Auth.BcryptCost)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TASKAPP_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("TASKAPP_AUTH_JWTSECRET", "env-secret")
	t.Setenv("TASKAPP_AUTH_TOKENTTLMINUTES", "60")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Fatalf("unexpected secret: %s", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTLMinutes != 60 {
		t.Fatalf("unexpected ttl: %d", cfg.Auth.TokenTTLMinutes)
	}
}
