package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/1broseidon/clickthrough/internal/platform"
	"github.com/1broseidon/clickthrough/internal/runtimepath"
)

// ActionLogConfig configures the rotating action log.
type ActionLogConfig struct {
	// Enabled turns action logging on/off
	Enabled bool `yaml:"enabled,omitempty"`
	// File is the log file path (default: $XDG_STATE_HOME/clickthrough/actions.log)
	File string `yaml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is the number of rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files,omitempty"`
}

// Config is the effective clickthrough configuration.
type Config struct {
	// Backend is one of auto, x11, win32, cocoa.
	Backend string `yaml:"backend"`
	// Display is the X11 display name; empty uses $DISPLAY.
	Display   string          `yaml:"display,omitempty"`
	LogLevel  string          `yaml:"log_level"`
	ActionLog ActionLogConfig `yaml:"action_log,omitempty"`
}

// ValidationError ties a validation failure to a YAML path and, when the
// value came from a file, its position.
type ValidationError struct {
	Path   string
	File   string
	Line   int
	Column int
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.File, e.Line, e.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend:  platform.BackendAuto,
		LogLevel: "info",
	}
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if !platform.ValidBackendName(c.Backend) {
		return &ValidationError{Path: "backend", Err: fmt.Errorf("backend must be one of: auto, x11, win32, cocoa")}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	if c.ActionLog.MaxSizeMB < 0 {
		return &ValidationError{Path: "action_log.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.ActionLog.MaxFiles < 0 {
		return &ValidationError{Path: "action_log.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level; unknown values are info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// PlatformOptions returns the backend options derived from the config.
func (c *Config) PlatformOptions() platform.Options {
	return platform.Options{Display: c.Display}
}

// GetActionLogConfig returns the action log config with defaults filled in.
func (c *Config) GetActionLogConfig() ActionLogConfig {
	if c == nil {
		return ActionLogConfig{}
	}
	cfg := c.ActionLog
	if cfg.File == "" {
		path, err := runtimepath.ActionLogPath()
		if err != nil {
			path = "actions.log"
		}
		cfg.File = path
	} else {
		cfg.File = expandHome(cfg.File)
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = 3
	}
	return cfg
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[2:])
}
