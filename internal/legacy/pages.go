// Package legacy migrates configuration shapes kept for backward
// compatibility.
package legacy

import "fmt"

// PagesCompatShim converts the old flat page-list shape (plain strings mixed
// with nested lists) into the current nested-mapping shape:
//
//	"path"                      -> "path"
//	["path"]                    -> "path"
//	["path", "Title"]           -> {"Title": "path"}
//	["path", "Category", "Title"] -> {"Category": [{"Title": "path"}, ...]}
//
// Consecutive entries sharing a category are grouped under one mapping.
// Anything else in a nested list is rejected.
func PagesCompatShim(pages []any) ([]any, error) {
	out := []any{}
	var category string
	var group []any

	flush := func() {
		if category != "" {
			out = append(out, map[string]any{category: group})
			category, group = "", nil
		}
	}

	for _, entry := range pages {
		switch e := entry.(type) {
		case string:
			flush()
			out = append(out, e)
		case []any:
			path, cat, title, err := splitLegacyEntry(e)
			if err != nil {
				return nil, err
			}
			if cat == "" {
				flush()
				if title == "" {
					out = append(out, path)
				} else {
					out = append(out, map[string]any{title: path})
				}
				continue
			}
			if cat != category {
				flush()
				category = cat
			}
			group = append(group, map[string]any{title: path})
		default:
			return nil, fmt.Errorf("unsupported legacy page entry %v", entry)
		}
	}
	flush()
	return out, nil
}

func splitLegacyEntry(entry []any) (path, category, title string, err error) {
	fields := make([]string, 0, len(entry))
	for _, f := range entry {
		s, ok := f.(string)
		if !ok {
			return "", "", "", fmt.Errorf("legacy page entry %v holds a non-string field", entry)
		}
		fields = append(fields, s)
	}
	switch len(fields) {
	case 1:
		return fields[0], "", "", nil
	case 2:
		return fields[0], "", fields[1], nil
	case 3:
		return fields[0], fields[1], fields[2], nil
	default:
		return "", "", "", fmt.Errorf("legacy page entry %v must hold 1 to 3 fields", entry)
	}
}
