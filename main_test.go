package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"appstore-finder/models"
)

func TestPrintProducts(t *testing.T) {
	products := []models.Product{
		{Name: "Messenger", Links: []string{"u1", "u2"}},
		{Name: "Skype", Links: []string{"u3"}},
	}

	var buf bytes.Buffer
	printProducts(&buf, products, false)
	if got, want := buf.String(), "Messenger\nSkype\n"; got != want {
		t.Errorf("printProducts() = %q, want %q", got, want)
	}

	buf.Reset()
	printProducts(&buf, products, true)
	want := "Messenger\n    u1\n    u2\nSkype\n    u3\n"
	if got := buf.String(); got != want {
		t.Errorf("printProducts(verbose) = %q, want %q", got, want)
	}
}

func TestLoadConfigFallback(t *testing.T) {
	dir := t.TempDir()

	cfg := loadConfig(filepath.Join(dir, "missing.yaml"))
	if cfg.Threshold != 60 {
		t.Errorf("missing file threshold = %d, want 60", cfg.Threshold)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("threshold: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if cfg := loadConfig(bad); cfg.Threshold != 60 {
		t.Errorf("invalid file threshold = %d, want default 60", cfg.Threshold)
	}

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("threshold: 75\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if cfg := loadConfig(good); cfg.Threshold != 75 {
		t.Errorf("threshold = %d, want 75", cfg.Threshold)
	}
}
