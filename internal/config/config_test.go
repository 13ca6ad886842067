package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vango-dev/toastkit/internal/errors"
	"github.com/vango-dev/toastkit/pkg/toast"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Toast.InfoDelay != "10s" || cfg.Toast.DefaultDelay != "5s" || cfg.Toast.ExitDelay != "300ms" {
		t.Errorf("Toast delays = %+v", cfg.Toast)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	t.Setenv(EnvPort, "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvPort, "")
	dir := t.TempDir()
	path := writeConfig(t, dir, `{
  "server": {"host": "0.0.0.0", "port": 8080},
  "toast": {"infoDelay": "2s", "messageMode": "markup"},
  "render": {"pretty": true}
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if !cfg.Render.Pretty {
		t.Error("Render.Pretty should be true")
	}
	if cfg.Toast.DefaultDelay != "5s" {
		t.Errorf("unset DefaultDelay = %q, want default", cfg.Toast.DefaultDelay)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	ts := cfg.ToastSettings()
	if ts.InfoDelay != 2*time.Second {
		t.Errorf("InfoDelay = %v, want 2s", ts.InfoDelay)
	}
	if ts.MessageMode != toast.MessageMarkup {
		t.Errorf("MessageMode = %q, want markup", ts.MessageMode)
	}
	if ts.ExitDelay != toast.DefaultExitDelay {
		t.Errorf("ExitDelay = %v", ts.ExitDelay)
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.HasCode(err, "E100") {
		t.Errorf("missing file error = %v, want E100", err)
	}

	dir := t.TempDir()
	path := writeConfig(t, dir, `{"server": {`)
	_, err = LoadFile(path)
	if !errors.HasCode(err, "E101") {
		t.Errorf("bad JSON error = %v, want E101", err)
	}
}

func TestEnvPort(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"server": {"port": 8080}}`)

	t.Setenv(EnvPort, "9090")
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}

	t.Setenv(EnvPort, "abc")
	if _, err := Load(dir); !errors.HasCode(err, "E103") {
		t.Errorf("bad env port error = %v, want E103", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "E103"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "E103"},
		{"bad duration", func(c *Config) { c.Toast.InfoDelay = "ten" }, "E102"},
		{"negative duration", func(c *Config) { c.Toast.ExitDelay = "-1s" }, "E102"},
		{"bad shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = "0s" }, "E102"},
		{"bad message mode", func(c *Config) { c.Toast.MessageMode = "html" }, "E104"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestShutdownTimeout(t *testing.T) {
	cfg := New()
	if cfg.ShutdownTimeout() != 5*time.Second {
		t.Errorf("ShutdownTimeout() = %v", cfg.ShutdownTimeout())
	}
	cfg.Server.ShutdownTimeout = "garbage"
	if cfg.ShutdownTimeout() != 5*time.Second {
		t.Errorf("invalid value should fall back, got %v", cfg.ShutdownTimeout())
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	t.Setenv(EnvPort, "")
	dir := t.TempDir()
	if Exists(dir) {
		t.Fatal("Exists() = true on empty dir")
	}

	cfg := New()
	cfg.Server.Port = 4000
	cfg.Toast.MessageMode = "markup"
	path := filepath.Join(dir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if !Exists(dir) {
		t.Fatal("Exists() = false after SaveTo")
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 4000 || loaded.Toast.MessageMode != "markup" {
		t.Errorf("loaded = %+v", loaded)
	}

	err = cfg.SaveTo(filepath.Join(dir, "missing", "x.json"))
	if !errors.HasCode(err, "E105") {
		t.Errorf("SaveTo(bad dir) = %v, want E105", err)
	}
}
