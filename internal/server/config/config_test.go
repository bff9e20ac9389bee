package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Address != ":8001" {
		t.Fatalf("unexpected address: %s", cfg.Address)
	}
	if cfg.TokenValidity != 24*time.Hour {
		t.Fatalf("unexpected token validity: %v", cfg.TokenValidity)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADDRESS", ":9001")
	t.Setenv("TOKEN_VALIDITY", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Address != ":9001" {
		t.Fatalf("env override not applied: %s", cfg.Address)
	}
	if cfg.TokenValidity != time.Hour {
		t.Fatalf("env override not applied: %v", cfg.TokenValidity)
	}
}
