package lexer

import (
	"strings"

	"github.com/arghelp/clipat/internal/catalog"
	"github.com/arghelp/clipat/internal/perr"
	"github.com/arghelp/clipat/internal/suggest"
	"github.com/arghelp/clipat/internal/value"
)

// Mode selects which error kind — and which zero-match recovery — a long
// or short option resolution call uses (spec.md §4.5, §4.6).
type Mode uint8

const (
	// ModeUser parses the user's argv: unknown options are a user-error,
	// never auto-registered.
	ModeUser Mode = iota
	// ModePattern parses the usage-text pattern: unknown options are
	// synthesized and registered into the catalog, per spec.md §4.3
	// ("the catalog is consulted for disambiguation; unknown long
	// options encountered inside the usage text are a language error"
	// only when the registration itself is impossible — e.g. ambiguous
	// prefixes are still a language error in pattern mode).
	ModePattern
)

func (m Mode) newError(format string, args ...interface{}) error {
	if m == ModeUser {
		return perr.NewUser(format, args...)
	}
	return perr.NewLanguage(format, args...)
}

// ResolveLong implements spec.md §4.5: split the current token at '=',
// find catalog prototypes whose Long form starts with the raw prefix,
// and return the single resolved occurrence.
func ResolveLong(s *Stream, cat *catalog.Catalog, mode Mode) (Token, error) {
	raw, attached, hasAttached := partition(*s.Move(), "=")

	candidates := cat.Find(raw)
	if exact, ok := cat.FindExactLong(raw); ok {
		candidates = []catalog.Option{exact}
	}

	switch {
	case len(candidates) == 0:
		if mode == ModeUser {
			err := perr.NewUser("%s is not recognized", raw)
			if best := suggest.Best(raw, cat.Names()); best != "" {
				return Token{}, err.WithSuggestions([]string{best})
			}
			return Token{}, err
		}
		arity := 0
		if hasAttached {
			arity = 1
		}
		proto := cat.Register(catalog.Option{Long: raw, Arity: arity, Default: value.NewBool(false), HasValue: true})
		return optionTokenFromProto(proto, attached, hasAttached, mode)

	case len(candidates) > 1:
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = c.Long
		}
		return Token{}, mode.newError("%s is not a unique prefix: %s?", raw, strings.Join(names, ", "))

	default:
		proto := candidates[0]
		if proto.Arity == 0 && hasAttached {
			return Token{}, mode.newError("%s must not have an argument", proto.Name())
		}
		if proto.Arity == 1 && !hasAttached {
			if s.Current() == nil {
				return Token{}, mode.newError("%s requires argument", proto.Name())
			}
			v := *s.Move()
			attached, hasAttached = v, true
		}
		return optionTokenFromProto(proto, attached, hasAttached, mode)
	}
}

// ResolveShorts implements spec.md §4.6: strip the leading '-' and
// repeatedly peel one character at a time off the cluster, resolving
// each against the catalog.
func ResolveShorts(s *Stream, cat *catalog.Catalog, mode Mode) ([]Token, error) {
	raw := strings.TrimPrefix(*s.Move(), "-")
	var out []Token
	for raw != "" {
		short := "-" + raw[:1]
		raw = raw[1:]

		candidates := cat.FindShort(short[1])
		switch {
		case len(candidates) > 1:
			return nil, mode.newError("%s is specified ambiguously %d times", short, len(candidates))

		case len(candidates) == 0:
			if mode == ModeUser {
				err := perr.NewUser("%s is not recognized", short)
				if best := suggest.Best(short, cat.Names()); best != "" {
					return nil, err.WithSuggestions([]string{best})
				}
				return nil, err
			}
			proto := cat.Register(catalog.Option{Short: short, Arity: 0, Default: value.NewBool(false), HasValue: true})
			tok, err := optionTokenFromProto(proto, "", false, mode)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)

		default:
			proto := candidates[0]
			var attached string
			var hasAttached bool
			if proto.Arity > 0 {
				if raw == "" {
					if s.Current() == nil {
						return nil, mode.newError("%s requires argument", short)
					}
					attached, hasAttached = *s.Move(), true
				} else {
					attached, hasAttached = raw, true
					raw = ""
				}
			}
			tok, err := optionTokenFromProto(proto, attached, hasAttached, mode)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
		}
	}
	return out, nil
}

func optionTokenFromProto(proto catalog.Option, attached string, hasAttached bool, mode Mode) (Token, error) {
	tok := Token{Kind: OptionTok, Short: proto.Short, Long: proto.Long, Arity: proto.Arity}
	if mode == ModeUser {
		switch {
		case proto.Arity == 1 && hasAttached:
			tok.Value = value.NewString(attached)
		case proto.Arity == 1:
			tok.Value = value.Nil
		default:
			tok.Value = value.NewBool(true)
		}
	} else {
		// Pattern mode never produces a match-time binding; the
		// catalog default is what flows into the result assembler.
		tok.Value = proto.Default
	}
	return tok, nil
}

// partition splits s at the first occurrence of sep, reporting whether
// sep was present (mirroring Python's str.partition, used by the
// reference implementations for exactly this purpose).
func partition(s, sep string) (before string, after string, found bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
