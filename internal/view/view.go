package view

import (
	"sort"
	"strings"
)

// FilterAll disables the filter predicate for a view.
const FilterAll = "all"

// State is the transient search/filter/sort selection driving a list view.
type State struct {
	Search string `json:"search"`
	Filter string `json:"filter"`
	Sort   string `json:"sort"`
}

// DefaultState resets a view after "clear filters".
func DefaultState(sortKey string) State {
	return State{Filter: FilterAll, Sort: sortKey}
}

type Predicate[T any] func(T) bool

// Comparator reports the order of a and b: negative, zero or positive.
type Comparator[T any] func(a, b T) int

// Config describes how one record type is searched, filtered and sorted.
type Config[T any] struct {
	// SearchFields returns the fields matched against the search query.
	SearchFields func(T) []string

	// Match reports whether a record passes the selected filter value.
	// Nil means the view has no filter selector.
	Match func(record T, filter string) bool

	// Sorts maps sort keys to comparators.
	Sorts map[string]Comparator[T]

	// DefaultSort is used when the requested key is empty or unknown.
	DefaultSort string
}

// Derive runs the full pipeline: filter by search + selected filter, then
// stable-sort by the selected key. The input slice is never mutated; ties
// keep input order.
func Derive[T any](records []T, st State, cfg Config[T]) []T {
	pred := cfg.predicate(st)

	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}

	if cmp := cfg.comparator(st.Sort); cmp != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return cmp(out[i], out[j]) < 0
		})
	}

	return out
}

func (cfg Config[T]) predicate(st State) Predicate[T] {
	query := strings.ToLower(strings.TrimSpace(st.Search))

	return func(r T) bool {
		if query != "" {
			if cfg.SearchFields == nil || !matchesAny(cfg.SearchFields(r), query) {
				return false
			}
		}
		if cfg.Match != nil && st.Filter != "" && st.Filter != FilterAll {
			if !cfg.Match(r, st.Filter) {
				return false
			}
		}
		return true
	}
}

func (cfg Config[T]) comparator(key string) Comparator[T] {
	if cmp, ok := cfg.Sorts[key]; ok {
		return cmp
	}
	return cfg.Sorts[cfg.DefaultSort]
}

func matchesAny(fields []string, query string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// CompareStrings orders case-insensitively, falling back to a case-sensitive
// comparison so equal-folded values still order deterministically.
func CompareStrings(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return strings.Compare(la, lb)
	}
	return strings.Compare(a, b)
}

// CompareInts is a Comparator building block for numeric sort keys.
func CompareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareFloats is a Comparator building block for decimal sort keys.
func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse inverts a comparator for the -desc variant of a sort key.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return -cmp(a, b) }
}
