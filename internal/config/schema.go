package config

import (
	"fmt"
)

// Entry binds a key name to its option. Order of entries is significant:
// Pass 2 runs in declaration order and later steps may read keys finalized
// by earlier ones.
type Entry struct {
	Key    string
	Option Option
}

// Schema is an immutable ordered option set. Once constructed it is
// read-only and safe to share across concurrent validation runs.
type Schema struct {
	entries []Entry
	index   map[string]int
}

// NewSchema builds a schema, enforcing unique keys and checking that every
// declared Pass-2 dependency refers to an earlier entry. A forward reference
// would silently read a not-yet-finalized value, so it is rejected here
// rather than at run time.
func NewSchema(entries ...Entry) (*Schema, error) {
	s := &Schema{entries: entries, index: make(map[string]int, len(entries))}
	for i, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("schema entry %d has an empty key", i)
		}
		if e.Option == nil {
			return nil, fmt.Errorf("schema entry %q has no option", e.Key)
		}
		if _, dup := s.index[e.Key]; dup {
			return nil, fmt.Errorf("duplicate schema key %q", e.Key)
		}
		s.index[e.Key] = i
	}
	for i, e := range entries {
		for _, dep := range e.Option.DependsOn() {
			j, known := s.index[dep]
			if !known {
				return nil, fmt.Errorf("schema key %q depends on unknown key %q", e.Key, dep)
			}
			if j >= i {
				return nil, fmt.Errorf("schema key %q depends on %q which is not declared before it", e.Key, dep)
			}
		}
	}
	return s, nil
}

// MustSchema is NewSchema for statically-known schemas.
func MustSchema(entries ...Entry) *Schema {
	s, err := NewSchema(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of entries.
func (s *Schema) Len() int { return len(s.entries) }

// Keys returns the keys in declaration order.
func (s *Schema) Keys() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Key
	}
	return out
}

// Option returns the option registered for key.
func (s *Schema) Option(key string) (Option, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return s.entries[i].Option, true
}
