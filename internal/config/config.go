package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/1broseidon/splitd/internal/split"
)

// Log formats accepted by log_format.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the daemon configuration. Every field is optional.
type Config struct {
	// Display is the X display to connect to; empty uses $DISPLAY.
	Display string `yaml:"display"`
	// LogLevel controls logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat selects the slog handler: text, json or auto (text on a terminal).
	LogFormat string `yaml:"log_format"`
	// SocketPath overrides the control socket location.
	SocketPath string `yaml:"socket_path"`
	// Hotkeys maps a command name to an xgbutil key sequence such as "Mod4-Left".
	Hotkeys map[string]string `yaml:"hotkeys"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: LogFormatAuto,
		Hotkeys:   map[string]string{},
	}
}

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks field values. The first problem found is returned as a
// *ValidationError.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("must be one of debug, info, warn, error (got %q)", c.LogLevel)}
	}

	switch c.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return &ValidationError{Path: "log_format", Err: fmt.Errorf("must be one of auto, text, json (got %q)", c.LogFormat)}
	}

	if c.SocketPath != "" && !filepath.IsAbs(c.SocketPath) {
		return &ValidationError{Path: "socket_path", Err: fmt.Errorf("must be an absolute path")}
	}

	for _, name := range sortedKeys(c.Hotkeys) {
		path := "hotkeys." + name
		cmd, err := split.ParseCommand(name)
		if err != nil {
			return &ValidationError{Path: path, Err: err}
		}
		if cmd == split.CommandQuit {
			return &ValidationError{Path: path, Err: fmt.Errorf("quit cannot be bound to a hotkey")}
		}
		if strings.TrimSpace(c.Hotkeys[name]) == "" {
			return &ValidationError{Path: path, Err: fmt.Errorf("key sequence is empty")}
		}
	}
	return nil
}

// HotkeyBindings returns the configured bindings in command order.
func (c *Config) HotkeyBindings() []Binding {
	var out []Binding
	for _, cmd := range split.Commands() {
		if seq, ok := c.Hotkeys[cmd.String()]; ok {
			out = append(out, Binding{Command: cmd, Keys: seq})
		}
	}
	return out
}

// Binding pairs a key sequence with the command it sends.
type Binding struct {
	Command split.Command
	Keys    string
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
