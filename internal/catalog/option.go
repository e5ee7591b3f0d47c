// Package catalog implements the option catalog parser (spec.md §4.1):
// it scans the descriptions block of a help document for option
// prototypes and tracks the identity rules new options must follow when
// they are synthesized later during usage or argv parsing.
package catalog

import (
	"regexp"
	"strings"

	"github.com/arghelp/clipat/internal/value"
)

// Option is a declared option prototype. Identity for equality purposes
// is the (Short, Long) pair only — Value and Arity are per-occurrence
// data layered on top (see DESIGN.md, internal/catalog).
type Option struct {
	Short    string // e.g. "-h", or "" if undeclared
	Long     string // e.g. "--help", or "" if undeclared
	Arity    int    // 0 or 1
	Default  value.Value
	HasValue bool // true once Default has been set to a concrete Value
}

// Name is the option's display name: Long if present, else Short.
func (o Option) Name() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// SameIdentity reports whether o and other declare the same option.
func (o Option) SameIdentity(other Option) bool {
	return o.Short == other.Short && o.Long == other.Long
}

// Catalog is an ordered, mutable list of option prototypes. Order of
// declaration is preserved because the result assembler walks it to
// produce deterministic default ordering before bindings are overlaid.
type Catalog struct {
	options []Option
}

// New returns an empty catalog.
func New() *Catalog { return &Catalog{} }

// Options returns the catalog's prototypes in declaration order. The
// returned slice must not be mutated by the caller.
func (c *Catalog) Options() []Option { return c.options }

// Find returns every declared option whose Long form starts with raw —
// used for the long-option prefix disambiguation rule (spec.md §4.5).
func (c *Catalog) Find(raw string) []Option {
	var out []Option
	for _, o := range c.options {
		if o.Long != "" && strings.HasPrefix(o.Long, raw) {
			out = append(out, o)
		}
	}
	return out
}

// FindExactLong returns the option whose Long form equals raw exactly, if
// any. Exact matches take priority over prefix matches so that declaring
// both --version and --versions never makes "--version" itself ambiguous.
func (c *Catalog) FindExactLong(raw string) (Option, bool) {
	for _, o := range c.options {
		if o.Long == raw {
			return o, true
		}
	}
	return Option{}, false
}

// FindShort returns every declared option whose Short form's bare
// character (minus the leading '-') equals ch.
func (c *Catalog) FindShort(ch byte) []Option {
	var out []Option
	for _, o := range c.options {
		if o.Short != "" && len(o.Short) >= 2 && o.Short[1] == ch {
			out = append(out, o)
		}
	}
	return out
}

// Register appends a newly synthesized prototype and returns it.
func (c *Catalog) Register(o Option) Option {
	c.options = append(c.options, o)
	return o
}

// Names returns the declared display names, used by internal/suggest to
// rank candidates for "did you mean" messages.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.options))
	for _, o := range c.options {
		out = append(out, o.Name())
	}
	return out
}

var reDefault = regexp.MustCompile(`(?i)\[default: (.*?)\]`)

// ParseDescriptions scans the free-form part of a help document for
// option description lines — any line whose first non-blank character
// is '-' — and parses each into a prototype (spec.md §4.1).
//
// A line is split at the first run of two or more spaces into signature
// and description; the signature is normalized by replacing ',' and '='
// with spaces and then tokenized on whitespace.
func ParseDescriptions(doc string) []Option {
	var out []Option
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		out = append(out, parseOptionLine(trimmed))
	}
	return out
}

var reTwoSpaces = regexp.MustCompile(`\s\s+`)

func parseOptionLine(line string) Option {
	line = strings.TrimSpace(line)
	sig, desc := line, ""
	if loc := reTwoSpaces.FindStringIndex(line); loc != nil {
		sig, desc = line[:loc[0]], line[loc[1]:]
	}
	sig = strings.NewReplacer(",", " ", "=", " ").Replace(sig)

	var o Option
	for _, tok := range strings.Fields(sig) {
		switch {
		case strings.HasPrefix(tok, "--"):
			o.Long = tok
		case strings.HasPrefix(tok, "-"):
			o.Short = tok
		default:
			o.Arity = 1
		}
	}

	if o.Arity == 1 {
		if m := reDefault.FindStringSubmatch(desc); m != nil {
			o.Default = value.NewString(m[1])
			o.HasValue = true
		} else {
			o.Default = value.Nil
			o.HasValue = true
		}
	} else {
		o.Default = value.NewBool(false)
		o.HasValue = true
	}
	return o
}
