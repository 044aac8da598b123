package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrInvalid is returned by Validate for a configuration that cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Control flow names accepted in LoopConfig.ControlFlow
const (
	ControlFlowPoll = "poll"
	ControlFlowWait = "wait"
)

// Config represents the main configuration
type Config struct {
	Window WindowConfig `yaml:"window"`
	Web    WebConfig    `yaml:"web"`
	Loop   LoopConfig   `yaml:"loop"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig contains the attributes of the native window
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

// WebConfig contains settings used only by the browser build
type WebConfig struct {
	CanvasID string `yaml:"canvas_id"` // id of the pre-existing <canvas> element
}

// LoopConfig contains event loop settings
type LoopConfig struct {
	ControlFlow string `yaml:"control_flow"` // poll, wait
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `yaml:"level"` // debug, info, warn, error, fatal
	File   string `yaml:"file"`  // optional; logs go to both console and file when set
	Colors bool   `yaml:"colors"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Hearth Window",
			Width:     800,
			Height:    600,
			Resizable: true,
			VSync:     true,
		},
		Web: WebConfig{
			CanvasID: "canvas",
		},
		Loop: LoopConfig{
			ControlFlow: ControlFlowPoll,
		},
		Log: LogConfig{
			Level:  "info",
			Colors: true,
		},
	}
}

// LoadConfig loads the configuration from a file, on top of the defaults.
// An empty path yields the defaults without touching the filesystem.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()
	if filePath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("error reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks the values the window and loop cannot start without
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Web.CanvasID == "" {
		return fmt.Errorf("%w: empty canvas id", ErrInvalid)
	}

	switch strings.ToLower(c.Loop.ControlFlow) {
	case ControlFlowPoll, ControlFlowWait:
	default:
		return fmt.Errorf("%w: unknown control flow %q", ErrInvalid, c.Loop.ControlFlow)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// WaitForEvents reports whether the loop should block between events
// instead of polling continuously
func (c *Config) WaitForEvents() bool {
	return strings.ToLower(c.Loop.ControlFlow) == ControlFlowWait
}
