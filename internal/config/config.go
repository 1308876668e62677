// Package config loads and persists the pomo settings file.
//
// Three scalars are persisted: the notifier backend list, the repeat flag,
// and the pattern string. Priority on load is environment variables over
// the settings file over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pomo-sh/pomo/internal/notify"
	"github.com/pomo-sh/pomo/internal/pattern"
)

// Settings holds the persisted configuration scalars. Empty values are
// legal: no backends means a silent run, an empty pattern a no-op one.
type Settings struct {
	// Notifier is a comma-separated backend list ("echo", "libnotify")
	Notifier string `koanf:"notifier" json:"notifier" validate:"backends"`
	// Repeat restarts the pattern unconditionally after each run
	Repeat bool `koanf:"repeat" json:"repeat"`
	// Pattern is the timer cycle in mini-language form
	Pattern string `koanf:"pattern" json:"pattern" validate:"timerpattern"`
}

// GetDefaults returns the default settings values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"notifier": "echo",
		"repeat":   false,
		"pattern":  pattern.DefaultString(),
	}
}

// Load loads settings from the given path, overridden by POMO_* environment
// variables. The returned bool reports whether the settings file existed,
// which callers use for first-use detection.
func Load(path string) (*Settings, bool, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	existed := false
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			existed = true
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return nil, true, fmt.Errorf("failed to load settings: %w", err)
			}
		}
	}

	// Environment variables take highest priority
	k.Load(env.Provider("POMO_", ".", envTransform), nil)

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, existed, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := newValidator().Struct(s); err != nil {
		return nil, existed, fmt.Errorf("settings validation failed: %w", err)
	}

	return &s, existed, nil
}

// newValidator builds a validator with the settings-specific rules:
// "backends" accepts anything notify.ParseBackends does, "timerpattern"
// anything pattern.Parse does.
func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("backends", func(fl validator.FieldLevel) bool {
		_, err := notify.ParseBackends(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("timerpattern", func(fl validator.FieldLevel) bool {
		_, err := pattern.Parse(fl.Field().String())
		return err == nil
	})
	return validate
}

// Save writes the settings file, creating parent directories as needed.
// Called once at first use; the core never rewrites it afterwards.
func Save(path string, s *Settings) error {
	data, err := json.Parser().Marshal(map[string]interface{}{
		"notifier": s.Notifier,
		"repeat":   s.Repeat,
		"pattern":  s.Pattern,
	})
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// DefaultPath returns the settings file location, honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pomo", "config.json")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".pomo.json")
	}
	return filepath.Join(homeDir, ".config", "pomo", "config.json")
}

// envTransform converts environment variable names to settings keys.
// Example: POMO_PATTERN -> pattern
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "POMO_"))
}
