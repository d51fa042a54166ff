package view

import (
	"strconv"
	"strings"
)

// Normalizer helpers for raw document fields. The store hands back untyped
// maps; records carry whatever the public site wrote, so every accessor
// degrades to a documented default instead of failing.

// String returns the field as a string, or fallback when absent or empty.
func String(v any, fallback string) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}

// Int parses an integer stored as a number or a string. Missing or
// unparseable values are 0.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
	}
	return 0
}

// Float parses a decimal stored as a number or a string. Missing or
// unparseable values are 0.
func Float(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

// Bool reads a boolean flag; anything that is not true is false.
func Bool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
