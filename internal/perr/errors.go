// Package perr defines the two error kinds clipat ever raises: a
// LanguageError (the help document is malformed — the developer's fault)
// and a UserError (the argv doesn't match the document — the end user's
// fault). Every internal package on Parse's path (lexer, ast, match)
// constructs one of these two, never a bare error, so the top-level Parse
// can always recover the kind with a type switch (spec.md §7). The cache
// and schema-validation helpers return ordinary wrapped errors.
package perr

import (
	"fmt"
	"strings"
)

// LanguageError reports a fault in the help document.
type LanguageError struct {
	msg string
}

// NewLanguage builds a LanguageError from a format string.
func NewLanguage(format string, args ...interface{}) *LanguageError {
	return &LanguageError{msg: fmt.Sprintf(format, args...)}
}

func (e *LanguageError) Error() string { return e.msg }

// UserError reports a fault in the argument vector.
type UserError struct {
	msg         string
	Usage       string
	Suggestions []string
}

// NewUser builds a UserError from a format string.
func NewUser(format string, args ...interface{}) *UserError {
	return &UserError{msg: fmt.Sprintf(format, args...)}
}

func (e *UserError) Error() string {
	if len(e.Suggestions) == 0 {
		return e.msg
	}
	return fmt.Sprintf("%s (did you mean %s?)", e.msg, strings.Join(e.Suggestions, ", "))
}

// WithUsage returns a copy of e carrying the printable usage block.
func (e *UserError) WithUsage(usage string) *UserError {
	cp := *e
	cp.Usage = usage
	return &cp
}

// WithSuggestions returns a copy of e carrying candidate names for a
// "did you mean" hint (internal/suggest).
func (e *UserError) WithSuggestions(names []string) *UserError {
	cp := *e
	cp.Suggestions = names
	return &cp
}

// Full renders the message, any suggestion hint, and the usage block.
func (e *UserError) Full() string {
	return strings.TrimSpace(e.Error() + "\n" + e.Usage)
}
