// Package config loads the editor configuration from a JSON file.
//
// The file is read with gjson path queries so unknown keys are ignored and
// missing keys fall back to defaults; WriteDefault emits a starter file
// built with sjson. A missing file is not an error — the defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/kwpeters/airliner/internal/input"
)

// ErrInvalidConfig indicates the configuration file is not valid JSON.
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults.
const (
	DefaultTabWidth   = 4
	DefaultKillWindow = 2500 * time.Millisecond
)

// Config holds the editor configuration.
type Config struct {
	// TabWidth is the display width of a tab character.
	TabWidth int

	// ReadOnly opens buffers read-only.
	ReadOnly bool

	// KillWindow is the kill accrual window.
	KillWindow time.Duration

	// Keymap binds key chord names to action names.
	Keymap input.Keymap
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TabWidth:   DefaultTabWidth,
		KillWindow: DefaultKillWindow,
		Keymap: input.Keymap{
			"Backspace": "smartedit.backspace",
			"Ctrl+K":    "smartedit.cutToEOL",
		},
	}
}

// Load reads the configuration file at path. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration JSON, applying defaults for absent keys.
func Parse(data []byte) (Config, error) {
	if !gjson.ValidBytes(data) {
		return Config{}, fmt.Errorf("%w: malformed JSON", ErrInvalidConfig)
	}

	cfg := Default()
	doc := gjson.ParseBytes(data)

	if v := doc.Get("editor.tabWidth"); v.Exists() && v.Int() > 0 {
		cfg.TabWidth = int(v.Int())
	}
	if v := doc.Get("editor.readOnly"); v.Exists() {
		cfg.ReadOnly = v.Bool()
	}
	if v := doc.Get("kill.windowMs"); v.Exists() && v.Int() > 0 {
		cfg.KillWindow = time.Duration(v.Int()) * time.Millisecond
	}
	if v := doc.Get("keymap"); v.Exists() {
		keymap := input.Keymap{}
		v.ForEach(func(key, value gjson.Result) bool {
			keymap[key.String()] = value.String()
			return true
		})
		cfg.Keymap = keymap
	}

	return cfg, nil
}

// DefaultJSON renders the default configuration as JSON.
func DefaultJSON() ([]byte, error) {
	cfg := Default()

	out := "{}"
	var err error
	if out, err = sjson.Set(out, "editor.tabWidth", cfg.TabWidth); err != nil {
		return nil, err
	}
	if out, err = sjson.Set(out, "editor.readOnly", cfg.ReadOnly); err != nil {
		return nil, err
	}
	if out, err = sjson.Set(out, "kill.windowMs", cfg.KillWindow.Milliseconds()); err != nil {
		return nil, err
	}
	for chord, action := range cfg.Keymap {
		if out, err = sjson.Set(out, "keymap."+chord, action); err != nil {
			return nil, err
		}
	}
	return []byte(out), nil
}

// WriteDefault writes the default configuration file to path.
func WriteDefault(path string) error {
	data, err := DefaultJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
