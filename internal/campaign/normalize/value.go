package normalize

import "strings"

// Helpers for reading loose JSON-decoded values. Every accessor is total:
// wrong types fall through to the zero value or the caller's default.

func mapValue(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// stringOr returns the value when it is a non-empty string, otherwise the
// default.
func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}

// numberValue accepts the numeric types the JSON and YAML decoders
// produce.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func intValue(v any, def int) int {
	if n, ok := numberValue(v); ok {
		return int(n)
	}
	return def
}

func int64Value(v any, def int64) int64 {
	if n, ok := numberValue(v); ok {
		return int64(n)
	}
	return def
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// cleanStrings trims, drops blanks, and deduplicates while preserving
// first-seen order.
func cleanStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func pairValue(v any) [2]string {
	var pair [2]string
	items, ok := v.([]any)
	if !ok {
		return pair
	}
	for i := 0; i < len(items) && i < 2; i++ {
		if s, ok := items[i].(string); ok {
			pair[i] = s
		}
	}
	return pair
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
