package config

import "strings"

// RawConfig is the unvalidated input to a run: the merged key/value mapping
// plus the ordered fragment list it was merged from. Layers are only consulted
// for presence checks ("did the user mention a theme key anywhere"), never for
// values; the merged mapping is authoritative.
type RawConfig struct {
	Values map[string]any
	Layers []map[string]any
}

// Config is the validated configuration being assembled. Every schema key is
// present after Pass 1; a nil value means "optional and unset". Pass-2
// handlers mutate it directly, which is how cross-field derivations are
// expressed.
type Config struct {
	values map[string]any
	order  []string
	layers []map[string]any
}

func newConfig(s *Schema, layers []map[string]any) *Config {
	// Pass 1 fills the mapping in schema order; Set tracks insertion order,
	// so no prefill is needed here.
	return &Config{
		values: make(map[string]any, len(s.entries)),
		order:  make([]string, 0, len(s.entries)),
		layers: layers,
	}
}

// Get returns the current value for key and whether the key is known.
// A nil value with ok=true means the option resolved to explicit absence.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// GetString returns the value for key as a string, or "" when unset or not
// a string.
func (c *Config) GetString(key string) string {
	s, _ := c.values[key].(string)
	return s
}

// Set stores a final value for key. Pass-2 handlers use this to write both
// their own key and derived companion keys.
func (c *Config) Set(key string, value any) {
	if _, known := c.values[key]; !known {
		c.order = append(c.order, key)
	}
	c.values[key] = value
}

// Keys returns the keys in schema order, followed by any keys added during
// Pass 2 in insertion order.
func (c *Config) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Map returns a copy of the mapping for callers that want to serialize or
// decode it.
func (c *Config) Map() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// LayerMentions reports whether any source layer contains a key with the
// given substring. Theme assembly uses this to tell an explicit theme choice
// apart from a defaulted one.
func (c *Config) LayerMentions(substr string) bool {
	for _, layer := range c.layers {
		for k := range layer {
			if strings.Contains(k, substr) {
				return true
			}
		}
	}
	return false
}
