package lexer

import "github.com/arghelp/clipat/internal/value"

// Kind tags what a lexed argv token represents.
type Kind uint8

const (
	// ArgumentTok is a positional token: a literal argv word that did
	// not resolve to a declared option. It may later be bound to an
	// Argument leaf or a Command leaf during matching (spec.md §3).
	ArgumentTok Kind = iota
	// OptionTok is a resolved option occurrence, carrying its own
	// concrete bound value rather than a name (spec.md §3: "Token ...
	// options carry concrete values").
	OptionTok
)

// Token is one entry of the lexed argv token list.
type Token struct {
	Kind Kind

	// ArgumentTok fields.
	Text string

	// OptionTok fields. Identity is (Short, Long); Value is the
	// concrete per-occurrence binding (true, or the attached/consumed
	// string).
	Short string
	Long  string
	Arity int
	Value value.Value
}

// Argument builds a positional token.
func Argument(text string) Token { return Token{Kind: ArgumentTok, Text: text} }

// Name returns the option's display name: Long if present, else Short.
// Meaningless for ArgumentTok.
func (t Token) Name() string {
	if t.Long != "" {
		return t.Long
	}
	return t.Short
}

// SameIdentity reports whether two option tokens (or an option token and
// a catalog prototype's identity pair) refer to the same declared option.
func (t Token) SameIdentity(short, long string) bool {
	return t.Short == short && t.Long == long
}
