// Package match implements the frontier-based NFA traversal described in
// spec.md §4.9: paths are expanded through Split nodes (ε-closure),
// scheduled breadth-first by generation, and the first path to reach the
// End sentinel with no tokens left wins.
package match

import (
	"fmt"

	"github.com/arghelp/clipat/internal/ast"
	"github.com/arghelp/clipat/internal/lexer"
	"github.com/arghelp/clipat/internal/nfa"
	"github.com/arghelp/clipat/internal/perr"
	"github.com/arghelp/clipat/internal/value"
)

// path is one frontier entry: a node position, the tokens still to be
// consumed on this branch, the bindings accumulated so far, and a stall
// counter guarding against the zero-token-progress loops a pattern like
// OneOrMore(options) could otherwise sustain forever (the reference
// implementation's OneOrMore.match breaks on "no change since last
// iteration" for the same reason).
type path struct {
	node  nfa.ID
	toks  []lexer.Token
	binds value.Map
	stall int
}

func clonePath(p path) path {
	toks := append([]lexer.Token(nil), p.toks...)
	binds := make(value.Map, len(p.binds))
	for k, v := range p.binds {
		binds[k] = v
	}
	return path{node: p.node, toks: toks, binds: binds, stall: p.stall}
}

// Match traverses g against tokens and returns the first winning path's
// bindings, or a UserError if every frontier path dies before reaching
// End with an empty token list.
func Match(g *nfa.Graph, tokens []lexer.Token) (value.Map, error) {
	frontier := []path{{node: g.Start, toks: tokens, binds: value.Map{}}}

	for gen := 0; ; gen++ {
		frontier = expand(g, frontier)
		logger.Debug("frontier expanded", "generation", gen, "paths", len(frontier))
		if len(frontier) == 0 {
			return nil, perr.NewUser("argv does not match any usage pattern")
		}

		for _, p := range frontier {
			if g.Nodes[p.node].Kind == nfa.EndNode && len(p.toks) == 0 {
				return p.binds, nil
			}
		}

		var next []path
		for _, p := range frontier {
			if g.Nodes[p.node].Kind == nfa.EndNode {
				continue // reached End with leftover tokens: dead branch
			}
			if np, ok := step(g, p); ok {
				next = append(next, np)
			}
		}
		if len(next) == 0 {
			return nil, perr.NewUser("argv does not match any usage pattern")
		}
		frontier = next
	}
}

// expand performs the ε-closure: every Split is replaced depth-first by
// its two successors, Out1 before Out2, so frontier order stays
// left-biased end to end (spec.md §4.9, §9 "Leftmost-branch preference").
func expand(g *nfa.Graph, frontier []path) []path {
	var out []path
	for _, p := range frontier {
		out = append(out, expandOne(g, p)...)
	}
	return out
}

func expandOne(g *nfa.Graph, p path) []path {
	n := &g.Nodes[p.node]
	if n.Kind != nfa.SplitNode {
		return []path{p}
	}
	p1 := p
	p1.node = n.Out1
	p2 := clonePath(p)
	p2.node = n.Out2
	return append(expandOne(g, p1), expandOne(g, p2)...)
}

// step applies the current leaf's consume rule (spec.md §4.9) and
// advances to Next, or reports failure if the rule doesn't apply.
func step(g *nfa.Graph, p path) (path, bool) {
	n := &g.Nodes[p.node]

	var next path
	var ok bool
	switch leaf := n.Leaf.(type) {
	case *ast.Argument:
		next, ok = consumeArgument(p, leaf)
	case *ast.Command:
		next, ok = consumeCommand(p, leaf)
	case *ast.OptionLeaf:
		next, ok = consumeOption(p, leaf)
	case *ast.AnyOptions:
		next, ok = consumeAnyOptions(p)
	case *ast.Sequence:
		if len(leaf.Children) != 0 {
			panic(fmt.Sprintf("match: non-empty Sequence reached as a leaf: %#v", leaf))
		}
		next, ok = p, true // identity node: OneOrMore's loop anchor / empty sequence
	default:
		panic(fmt.Sprintf("match: unexpected leaf type %T", leaf))
	}
	if !ok {
		return path{}, false
	}

	if len(next.toks) == len(p.toks) {
		next.stall = p.stall + 1
	} else {
		next.stall = 0
	}
	if next.stall > len(g.Nodes) {
		return path{}, false
	}
	next.node = n.Next
	return next, true
}

func firstArgumentIndex(toks []lexer.Token) int {
	for i, t := range toks {
		if t.Kind == lexer.ArgumentTok {
			return i
		}
	}
	return -1
}

func removeAt(toks []lexer.Token, i int) []lexer.Token {
	out := make([]lexer.Token, 0, len(toks)-1)
	out = append(out, toks[:i]...)
	out = append(out, toks[i+1:]...)
	return out
}

func consumeArgument(p path, leaf *ast.Argument) (path, bool) {
	idx := firstArgumentIndex(p.toks)
	if idx < 0 {
		return path{}, false
	}
	text := p.toks[idx].Text
	next := clonePath(p)
	next.toks = removeAt(p.toks, idx)

	if leaf.List {
		if cur, ok := next.binds[leaf.Name]; ok && cur.Kind == value.List {
			next.binds[leaf.Name] = cur.Append(text)
		} else {
			next.binds[leaf.Name] = value.NewList([]string{text})
		}
	} else {
		next.binds[leaf.Name] = value.NewString(text)
	}
	return next, true
}

func consumeCommand(p path, leaf *ast.Command) (path, bool) {
	idx := firstArgumentIndex(p.toks)
	if idx < 0 {
		return path{}, false
	}
	if p.toks[idx].Text != leaf.Name {
		return path{}, false
	}
	next := clonePath(p)
	next.toks = removeAt(p.toks, idx)
	next.binds[leaf.Name] = value.NewBool(true)
	return next, true
}

func consumeOption(p path, leaf *ast.OptionLeaf) (path, bool) {
	matchIdx := -1
	for i := len(p.toks) - 1; i >= 0; i-- {
		t := p.toks[i]
		if t.Kind == lexer.OptionTok && t.SameIdentity(leaf.Short, leaf.Long) {
			matchIdx = i
			break
		}
	}
	if matchIdx < 0 {
		return path{}, false
	}
	val := p.toks[matchIdx].Value

	var kept []lexer.Token
	for _, t := range p.toks {
		if t.Kind == lexer.OptionTok && t.SameIdentity(leaf.Short, leaf.Long) {
			continue
		}
		kept = append(kept, t)
	}
	next := clonePath(p)
	next.toks = kept
	next.binds[leaf.Name()] = val
	return next, true
}

func consumeAnyOptions(p path) (path, bool) {
	var kept []lexer.Token
	for _, t := range p.toks {
		if t.Kind == lexer.OptionTok {
			continue
		}
		kept = append(kept, t)
	}
	next := p
	next.toks = kept
	return next, true
}
