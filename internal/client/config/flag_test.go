package config

import (
	"os"
	"testing"
)

func TestParseFlags_OverridesBaseURLAndDatabase(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"client", "-a", "http://wache:8001", "-d", "/tmp/patrol.db", "-x", "ignored"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	if cfg.APIBaseURL != "http://wache:8001" {
		t.Fatalf("base URL not overridden: %s", cfg.APIBaseURL)
	}
	if cfg.DatabasePath != "/tmp/patrol.db" {
		t.Fatalf("database path not overridden: %s", cfg.DatabasePath)
	}
}
