package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLots_ReadsDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.json")
	content := `[
		{"key": "lot-a", "width": 8, "height": 6, "cellSize": 100},
		{"key": "lot-b", "width": 4, "height": 4, "cellSize": 50, "originX": 300, "yawDegrees": 90}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lots, err := LoadLots(path)
	if err != nil {
		t.Fatalf("LoadLots failed: %v", err)
	}

	calc := lots.Calculator("lot-a")
	if calc == nil {
		t.Fatal("expected calculator for lot-a")
	}
	if calc.Width() != 8 || calc.Height() != 6 {
		t.Errorf("unexpected extent %dx%d", calc.Width(), calc.Height())
	}
	if lots.Calculator("lot-c") != nil {
		t.Error("expected nil calculator for unknown lot")
	}
}

func TestLoadLots_RejectsInvalidDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lots.json")
	if err := os.WriteFile(path, []byte(`[{"key": "broken", "width": 0, "height": 4, "cellSize": 100}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLots(path); err == nil {
		t.Fatal("expected error for zero-width lot")
	}
}

func TestLoadLots_MissingFile(t *testing.T) {
	if _, err := LoadLots(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for a missing lots file")
	}
}
