package ast

import (
	"strings"

	"github.com/arghelp/clipat/internal/catalog"
	"github.com/arghelp/clipat/internal/lexer"
	"github.com/arghelp/clipat/internal/perr"
)

// Parse implements the grammar of spec.md §4.3 over the output of
// lexer.TokenizePattern:
//
//	expr  ::= seq ( '|' seq )*
//	seq   ::= ( atom [ '...' ] )*
//	atom  ::= '(' expr ')' | '[' expr ']' | 'options'
//	        | long-option | short-cluster | <angle>|CAPS | word
//
// Long and short options inside the pattern are resolved against cat in
// lexer.ModePattern, so an undeclared option is synthesized and
// registered rather than rejected — only a genuinely unresolvable
// occurrence (ambiguous prefix, wrong arity) is a language error.
func Parse(tokens []string, cat *catalog.Catalog) (Node, error) {
	logger.Debug("parsing pattern", "tokens", tokens)
	s := lexer.NewStream(tokens)
	root, err := parseExpr(s, cat)
	if err != nil {
		logger.Debug("pattern parse failed", "error", err)
		return nil, err
	}
	if !s.Done() {
		return nil, perr.NewLanguage("unexpected %q", *s.Current())
	}
	return root, nil
}

func parseExpr(s *lexer.Stream, cat *catalog.Catalog) (Node, error) {
	first, err := parseSeq(s, cat)
	if err != nil {
		return nil, err
	}
	branches := []Node{first}
	for s.Current() != nil && *s.Current() == "|" {
		s.Move()
		next, err := parseSeq(s, cat)
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return &Either{Children: branches}, nil
}

func parseSeq(s *lexer.Stream, cat *catalog.Catalog) (Node, error) {
	var children []Node
	for s.Current() != nil && !isSeqTerminator(*s.Current()) {
		atom, err := parseAtom(s, cat)
		if err != nil {
			return nil, err
		}
		if s.Current() != nil && *s.Current() == "..." {
			s.Move()
			atom = &OneOrMore{Children: []Node{atom}}
		}
		children = append(children, atom)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &Sequence{Children: children}, nil
}

func isSeqTerminator(tok string) bool {
	return tok == "]" || tok == ")" || tok == "|"
}

func parseAtom(s *lexer.Stream, cat *catalog.Catalog) (Node, error) {
	tok := s.Current()
	if tok == nil {
		return nil, perr.NewLanguage("unexpected end of pattern")
	}

	switch {
	case *tok == "(":
		s.Move()
		inner, err := parseExpr(s, cat)
		if err != nil {
			return nil, err
		}
		if s.Current() == nil || *s.Current() != ")" {
			return nil, perr.NewLanguage("unmatched '('")
		}
		s.Move()
		return &Sequence{Children: []Node{inner}}, nil

	case *tok == "[":
		s.Move()
		inner, err := parseExpr(s, cat)
		if err != nil {
			return nil, err
		}
		if s.Current() == nil || *s.Current() != "]" {
			return nil, perr.NewLanguage("unmatched '['")
		}
		s.Move()
		return &Optional{Children: []Node{inner}}, nil

	case *tok == ")" || *tok == "]":
		return nil, perr.NewLanguage("unexpected %q", *tok)

	case *tok == "options":
		s.Move()
		return &AnyOptions{}, nil

	case strings.HasPrefix(*tok, "--") && *tok != "--":
		resolved, err := lexer.ResolveLong(s, cat, lexer.ModePattern)
		if err != nil {
			return nil, err
		}
		return &OptionLeaf{Short: resolved.Short, Long: resolved.Long, Arity: resolved.Arity}, nil

	case strings.HasPrefix(*tok, "-") && *tok != "-" && *tok != "--":
		toks, err := lexer.ResolveShorts(s, cat, lexer.ModePattern)
		if err != nil {
			return nil, err
		}
		leaves := make([]Node, len(toks))
		for i, t := range toks {
			leaves[i] = &OptionLeaf{Short: t.Short, Long: t.Long, Arity: t.Arity}
		}
		if len(leaves) == 1 {
			return leaves[0], nil
		}
		return &Sequence{Children: leaves}, nil

	default:
		s.Move()
		if isArgumentName(*tok) {
			return &Argument{Name: *tok}, nil
		}
		return &Command{Name: *tok}, nil
	}
}

// isArgumentName reports whether a bare pattern word names a positional
// argument (<angle-bracket> form, or ALL-CAPS) rather than a literal
// command token.
func isArgumentName(tok string) bool {
	if len(tok) > 1 && strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") {
		return true
	}
	sawUpper := false
	for _, r := range tok {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			sawUpper = true
		}
	}
	return sawUpper
}
