package lexer

import "github.com/arghelp/clipat/internal/catalog"

// LexArgv implements spec.md §4.4: a small state machine over the raw
// argv tokens that resolves long options, short clusters, and the "--"
// end-of-options sentinel into a flat Token list.
//
// Following the reference implementations (original_source/docopt.py's
// parse_args, and the NFA variant's handling of "--"), the sentinel
// token itself is re-emitted as a positional argument along with every
// token after it — it is never dropped — so a pattern that literally
// names "--" as a command leaf can still match it (spec.md §8 scenario
// 6, invariant 5).
func LexArgv(argv []string, cat *catalog.Catalog) ([]Token, error) {
	s := NewStream(argv)
	var out []Token

	for s.Current() != nil {
		cur := *s.Current()
		switch {
		case cur == "--":
			for _, v := range s.Remaining() {
				out = append(out, Argument(v))
			}
			return out, nil

		case hasOptionPrefix(cur, "--"):
			tok, err := ResolveLong(s, cat, ModeUser)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)

		case hasOptionPrefix(cur, "-") && cur != "-":
			toks, err := ResolveShorts(s, cat, ModeUser)
			if err != nil {
				return nil, err
			}
			out = append(out, toks...)

		default:
			out = append(out, Argument(*s.Move()))
		}
	}
	return out, nil
}

func hasOptionPrefix(tok, prefix string) bool {
	if len(tok) < len(prefix) {
		return false
	}
	return tok[:len(prefix)] == prefix
}
