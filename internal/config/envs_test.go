package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "LOTS_FILE", "LOT_KEY", "DB_PATH", "FLOOR_COUNT", "FLOOR_HEIGHT", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.AppPort)
	}
	if cfg.FloorCount != 1 {
		t.Errorf("expected default floor count 1, got %d", cfg.FloorCount)
	}
	if cfg.Debug {
		t.Error("debug must default to false")
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("FLOOR_COUNT", "3")
	t.Setenv("FLOOR_HEIGHT", "250.5")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	if cfg.AppPort != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.AppPort)
	}
	if cfg.FloorCount != 3 {
		t.Errorf("expected 3 floors, got %d", cfg.FloorCount)
	}
	if cfg.FloorHeight != 250.5 {
		t.Errorf("expected floor height 250.5, got %f", cfg.FloorHeight)
	}
	if !cfg.Debug {
		t.Error("expected debug enabled")
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("FLOOR_COUNT", "many")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()
	if cfg.FloorCount != 1 {
		t.Errorf("invalid FLOOR_COUNT must fall back to 1, got %d", cfg.FloorCount)
	}
	if cfg.Debug {
		t.Error("invalid DEBUG must fall back to false")
	}
}
