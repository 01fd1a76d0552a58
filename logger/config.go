package logger

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/titanous/json5"
)

var (
	// ErrInvalidLevel is returned by ParseLevel for unknown names.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidColorMode is returned for color modes other than never, always and auto.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrUnsupportedConfig is returned by LoadConfig for unknown file extensions.
	ErrUnsupportedConfig = errors.New("unsupported config file type")
)

// ColorMode controls ANSI coloring of the level label on the console.
type ColorMode string

const (
	// ColorNever disables color. The empty ColorMode means the same.
	ColorNever ColorMode = "never"
	// ColorAlways colors the label regardless of the console type.
	ColorAlways ColorMode = "always"
	// ColorAuto colors the label only when the console is a terminal.
	ColorAuto ColorMode = "auto"
)

// ParseColorMode parses never, always or auto (case-insensitive).
// The empty string yields ColorNever.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ColorNever:
		return ColorNever, nil
	case ColorAlways, ColorAuto:
		return m, nil
	}
	return ColorNever, errors.Wrapf(ErrInvalidColorMode, "%q", s)
}

// Config defines options for Init, NewWithConfig and Apply.
// The zero value is the default configuration.
type Config struct {
	// DisablePrint turns console output off; callbacks still fire.
	// Default: false (console output enabled)
	DisablePrint bool `toml:"disable_print" json:"disable_print"`
	// DisableTimestamp drops the millisecond timestamp prefix.
	// Default: false (timestamps enabled)
	DisableTimestamp bool `toml:"disable_timestamp" json:"disable_timestamp"`
	// Color selects label coloring on the console: never, always or auto.
	// Default: "" (never)
	Color ColorMode `toml:"color" json:"color"`
}

// Validate reports whether every field holds a supported value.
func (c Config) Validate() error {
	_, err := ParseColorMode(string(c.Color))
	return err
}

// LoadConfig reads a Config from a .toml, .json or .json5 file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".json", ".json5":
		err = json5.Unmarshal(data, &cfg)
	default:
		return cfg, errors.Wrapf(ErrUnsupportedConfig, "%s", path)
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// ConfigFromEnv overlays LOGGER_PRINT, LOGGER_TIMESTAMP and LOGGER_COLOR
// onto base. Unset or empty variables leave the base value untouched.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("LOGGER_PRINT")); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return base, errors.Wrap(err, "LOGGER_PRINT")
		}
		cfg.DisablePrint = !on
	}
	if v := strings.TrimSpace(os.Getenv("LOGGER_TIMESTAMP")); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return base, errors.Wrap(err, "LOGGER_TIMESTAMP")
		}
		cfg.DisableTimestamp = !on
	}
	if v := os.Getenv("LOGGER_COLOR"); v != "" {
		mode, err := ParseColorMode(v)
		if err != nil {
			return base, errors.Wrap(err, "LOGGER_COLOR")
		}
		cfg.Color = mode
	}
	return cfg, nil
}
