package main

import (
	"testing"

	"github.com/vango-dev/toastkit/internal/config"
	"github.com/vango-dev/toastkit/internal/errors"
)

func TestInit(t *testing.T) {
	t.Setenv("TOASTKIT_PORT", "")
	dir := t.TempDir()

	path, err := runInit(dir, false)
	if err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("written config should validate: %v", err)
	}

	if _, err := runInit(dir, false); !errors.HasCode(err, "E106") {
		t.Errorf("second runInit() = %v, want E106", err)
	}
	if _, err := runInit(dir, true); err != nil {
		t.Errorf("runInit(force) error = %v", err)
	}
}
