// Package value defines the tagged variant used for every bound
// option/argument/command value throughout clipat, replacing the runtime
// any/interface{} values of the reference implementations with an
// explicit sum type (see DESIGN.md, internal/value).
package value

import "sort"

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// Null means "declared but never bound" — the zero Value.
	Null Kind = iota
	// Bool holds an option's presence/absence or a command's match state.
	Bool
	// String holds a scalar option argument or positional argument value.
	String
	// List holds the values of an argument leaf marked list-typed by the
	// list-argument analyzer (spec.md §4.8).
	List
	// Count is reserved for future integer-valued leaves (spec.md §6);
	// unused by any current operation.
	Count
)

// Value is the only type collected/returned for a leaf binding.
// Exactly one of the fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Bool bool
	Str  string
	List []string
	Int  int
}

// Nil is the shared zero value for "declared but unmatched".
var Nil = Value{Kind: Null}

// NewBool wraps b.
func NewBool(b bool) Value { return Value{Kind: Bool, Bool: b} }

// NewString wraps s.
func NewString(s string) Value { return Value{Kind: String, Str: s} }

// NewList wraps a list-typed binding. A nil slice is preserved as an
// empty, non-nil list so an unmatched list-typed leaf still reports
// an empty list rather than null (spec.md invariant 3).
func NewList(items []string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{Kind: List, List: items}
}

// NewCount wraps an integer occurrence count.
func NewCount(n int) Value { return Value{Kind: Count, Int: n} }

// Append returns a new list Value with s appended. Calling Append on a
// non-list Value panics; callers are expected to have already promoted
// the leaf to list-typed via the list-argument analyzer.
func (v Value) Append(s string) Value {
	if v.Kind != List {
		panic("value: Append on non-list Value")
	}
	out := make([]string, len(v.List)+1)
	copy(out, v.List)
	out[len(v.List)] = s
	return Value{Kind: List, List: out}
}

// Equal reports whether two values are structurally identical.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Bool:
		return v.Bool == o.Bool
	case String:
		return v.Str == o.Str
	case Count:
		return v.Int == o.Int
	case List:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if v.List[i] != o.List[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Interface converts v back to a plain Go value for callers that would
// rather range over map[string]interface{} than the typed Value. The
// mapping is string | bool | []string | nil, matching spec.md §6, plus
// int for the reserved Count kind.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case Bool:
		return v.Bool
	case String:
		return v.Str
	case List:
		return append([]string(nil), v.List...)
	case Count:
		return v.Int
	default:
		return nil
	}
}

// Map is the result of a successful parse: display name -> bound value.
type Map map[string]Value

// SortedKeys returns the map's keys in sorted order, for deterministic
// output (grounded on docopt.py's Dict.__repr__, which sorts for the same
// reason).
func (m Map) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
