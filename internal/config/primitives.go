package config

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ValueType enumerates the value shapes a decoded YAML document can carry.
type ValueType string

const (
	TypeString ValueType = "string"
	TypeBool   ValueType = "bool"
	TypeInt    ValueType = "int"
	TypeFloat  ValueType = "float"
	TypeList   ValueType = "list"
	TypeMap    ValueType = "mapping"
)

// typeOf classifies a decoded value into a ValueType, or "" for anything
// outside the YAML value model.
func typeOf(v any) ValueType {
	switch v.(type) {
	case string:
		return TypeString
	case bool:
		return TypeBool
	case int, int64:
		return TypeInt
	case float64:
		return TypeFloat
	case []any, []string:
		return TypeList
	case map[string]any:
		return TypeMap
	default:
		return ""
	}
}

// lengthOf returns the element count of a sized value.
func lengthOf(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		return len(t), true
	case []any:
		return len(t), true
	case []string:
		return len(t), true
	case map[string]any:
		return len(t), true
	default:
		return 0, false
	}
}

// TypeOption validates that a value has one of the declared shapes and,
// when Length is set (>0), exactly that many elements.
type TypeOption struct {
	BaseOption
	Types  []ValueType
	Length int
}

// String returns a TypeOption accepting a single string value.
func String() *TypeOption {
	return &TypeOption{Types: []ValueType{TypeString}}
}

// StringDefault returns a string-typed option with a default value.
func StringDefault(def string) *TypeOption {
	return &TypeOption{BaseOption: BaseOption{DefaultValue: def}, Types: []ValueType{TypeString}}
}

// Bool returns a bool-typed option with a default value.
func Bool(def bool) *TypeOption {
	return &TypeOption{BaseOption: BaseOption{DefaultValue: def}, Types: []ValueType{TypeBool}}
}

func (o *TypeOption) expected() string {
	names := make([]string, len(o.Types))
	for i, t := range o.Types {
		names[i] = string(t)
	}
	return strings.Join(names, " or ")
}

func (o *TypeOption) Check(_ *Run, value any) (any, error) {
	got := typeOf(value)
	matched := false
	for _, t := range o.Types {
		if got == t {
			matched = true
			break
		}
	}
	if !matched {
		return nil, newValidationError("expected type %s but received %s", o.expected(), describeType(value))
	}
	if o.Length > 0 {
		n, ok := lengthOf(value)
		if !ok || n != o.Length {
			return nil, newValidationError("expected %s of length %d but received length %d", o.expected(), o.Length, n)
		}
	}
	return value, nil
}

func describeType(v any) string {
	if t := typeOf(v); t != "" {
		return string(t)
	}
	if v == nil {
		return "null"
	}
	return "unsupported value"
}

// URLOption validates that a value parses as a URL with an explicit scheme.
// Bare hostnames and paths are rejected; a passing value is returned
// unchanged, with no normalization.
type URLOption struct {
	BaseOption
}

func (o *URLOption) Check(_ *Run, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, newValidationError("unable to parse the URL: expected a string but received %s", describeType(value))
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return nil, newValidationError("unable to parse the URL %q: %v", s, err)
	}
	if parsed.Scheme == "" {
		return nil, newValidationError("the URL %q is missing a scheme (it should include e.g. https://)", s)
	}
	return s, nil
}

// DirOption validates a directory path string, optionally requiring it to
// exist, and always resolves it to absolute, cleaned form (even when
// existence is not required).
type DirOption struct {
	TypeOption
	FS        FileSystem
	MustExist bool
}

// NewDir constructs a directory option. def may be "" for no default.
func NewDir(fsys FileSystem, mustExist bool, def string) *DirOption {
	d := &DirOption{TypeOption: TypeOption{Types: []ValueType{TypeString}}, FS: fsys, MustExist: mustExist}
	if def != "" {
		d.DefaultValue = def
	}
	return d
}

func (o *DirOption) Check(run *Run, value any) (any, error) {
	v, err := o.TypeOption.Check(run, value)
	if err != nil {
		return nil, err
	}
	path := v.(string)
	if o.MustExist && !o.FS.IsDir(path) {
		return nil, newValidationError("the path %q is not an existing directory", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, newValidationError("unable to resolve path %q: %v", path, err)
	}
	return filepath.Clean(abs), nil
}
