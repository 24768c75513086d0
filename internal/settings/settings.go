// Package settings provides typed accessors for the evaluated `settings`
// attributes of a module manifest. Factories use these helpers to pull the
// values they need out of the cty map without each reinventing conversion
// and defaulting logic.
package settings

import (
	"fmt"
	"time"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// String returns the string setting under key, or def when the key is absent.
func String(m map[string]cty.Value, key, def string) (string, error) {
	val, ok := m[key]
	if !ok || val.IsNull() {
		return def, nil
	}
	var out string
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return "", fmt.Errorf("setting %q: %w", key, err)
	}
	return out, nil
}

// RequiredString returns the string setting under key, failing when absent.
func RequiredString(m map[string]cty.Value, key string) (string, error) {
	val, ok := m[key]
	if !ok || val.IsNull() {
		return "", fmt.Errorf("setting %q is required", key)
	}
	var out string
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return "", fmt.Errorf("setting %q: %w", key, err)
	}
	return out, nil
}

// Bool returns the bool setting under key, or def when the key is absent.
func Bool(m map[string]cty.Value, key string, def bool) (bool, error) {
	val, ok := m[key]
	if !ok || val.IsNull() {
		return def, nil
	}
	var out bool
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return false, fmt.Errorf("setting %q: %w", key, err)
	}
	return out, nil
}

// Int returns the integer setting under key, or def when the key is absent.
func Int(m map[string]cty.Value, key string, def int) (int, error) {
	val, ok := m[key]
	if !ok || val.IsNull() {
		return def, nil
	}
	var out int
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return 0, fmt.Errorf("setting %q: %w", key, err)
	}
	return out, nil
}

// Duration returns the duration setting under key parsed from its string
// form (e.g. "10s"), or def when the key is absent.
func Duration(m map[string]cty.Value, key string, def time.Duration) (time.Duration, error) {
	raw, err := String(m, key, "")
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("setting %q: %w", key, err)
	}
	return d, nil
}
