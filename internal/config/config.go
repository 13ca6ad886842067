package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/toastkit/internal/errors"
	"github.com/vango-dev/toastkit/pkg/toast"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "toastkit.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = "5s"

	// EnvPort overrides Server.Port when set.
	EnvPort = "TOASTKIT_PORT"
)

// Config represents the complete toastkit.json configuration.
type Config struct {
	// Server contains preview server configuration.
	Server ServerConfig `json:"server"`

	// Toast contains toast behavior configuration.
	Toast ToastConfig `json:"toast"`

	// Render contains HTML output configuration.
	Render RenderConfig `json:"render"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// ShutdownTimeout is how long in-flight requests get on shutdown (e.g., "5s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// ToastConfig contains toast settings. Durations use Go syntax ("300ms").
type ToastConfig struct {
	ContainerID  string `json:"containerId,omitempty"`
	InfoDelay    string `json:"infoDelay,omitempty"`
	DefaultDelay string `json:"defaultDelay,omitempty"`
	ExitDelay    string `json:"exitDelay,omitempty"`

	// MessageMode is "text" (escaped, default) or "markup" (raw HTML).
	MessageMode string `json:"messageMode,omitempty"`
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Toast: ToastConfig{
			ContainerID:  toast.DefaultContainerID,
			InfoDelay:    toast.DefaultInfoDelay.String(),
			DefaultDelay: toast.DefaultDelay.String(),
			ExitDelay:    toast.DefaultExitDelay.String(),
			MessageMode:  string(toast.MessageText),
		},
	}
}

// Load loads toastkit.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := New()
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E100").
			WithFile(path).
			Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithFile(path).
			WithSuggestion("Check for trailing commas or unquoted keys").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to path as indented JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E105").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E105").WithFile(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Exists reports whether dir contains a config file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults restores defaults for fields the file set to zero values.
func (c *Config) applyDefaults() {
	d := New()
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.Toast.ContainerID == "" {
		c.Toast.ContainerID = d.Toast.ContainerID
	}
	if c.Toast.InfoDelay == "" {
		c.Toast.InfoDelay = d.Toast.InfoDelay
	}
	if c.Toast.DefaultDelay == "" {
		c.Toast.DefaultDelay = d.Toast.DefaultDelay
	}
	if c.Toast.ExitDelay == "" {
		c.Toast.ExitDelay = d.Toast.ExitDelay
	}
	if c.Toast.MessageMode == "" {
		c.Toast.MessageMode = d.Toast.MessageMode
	}
}

func (c *Config) applyEnv() error {
	v := os.Getenv(EnvPort)
	if v == "" {
		return nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return errors.New("E103").
			WithSuggestion(EnvPort + " must be a number").
			Wrap(err)
	}
	c.Server.Port = port
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("E103").
			WithFile(c.configPath).
			WithSuggestion("Set server.port or " + EnvPort + " to a value between 1 and 65535").
			Wrap(fmt.Errorf("got %d", c.Server.Port))
	}
	for _, d := range []struct{ name, value string }{
		{"server.shutdownTimeout", c.Server.ShutdownTimeout},
		{"toast.infoDelay", c.Toast.InfoDelay},
		{"toast.defaultDelay", c.Toast.DefaultDelay},
		{"toast.exitDelay", c.Toast.ExitDelay},
	} {
		if _, err := parsePositive(d.name, d.value); err != nil {
			return err.WithFile(c.configPath)
		}
	}
	if _, err := toast.ParseMessageMode(c.Toast.MessageMode); err != nil {
		return errors.New("E104").
			WithFile(c.configPath).
			Wrap(err)
	}
	return nil
}

// Address returns host:port for the preview server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ShutdownTimeout returns the parsed shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// ToastSettings converts the toast section into a toast.Config.
// Call Validate first; unparsable fields fall back to toast defaults.
func (c *Config) ToastSettings() toast.Config {
	cfg := toast.Config{
		ContainerID: c.Toast.ContainerID,
	}
	cfg.InfoDelay, _ = time.ParseDuration(c.Toast.InfoDelay)
	cfg.DefaultDelay, _ = time.ParseDuration(c.Toast.DefaultDelay)
	cfg.ExitDelay, _ = time.ParseDuration(c.Toast.ExitDelay)
	cfg.MessageMode, _ = toast.ParseMessageMode(c.Toast.MessageMode)
	return cfg
}

func parsePositive(name, value string) (time.Duration, *errors.ToastError) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.New("E102").
			WithDetail(name + " could not be parsed.").
			WithSuggestion(`Use Go duration syntax, e.g. "5s" or "300ms"`).
			Wrap(err)
	}
	if d <= 0 {
		return 0, errors.New("E102").
			WithDetail(name + " must be positive, got " + value + ".")
	}
	return d, nil
}
