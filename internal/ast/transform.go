package ast

// MarkListArguments implements the list-argument analyzer (spec.md
// §4.8): normalize the pattern into a top-level alternation of flat
// leaf sequences, then mark any Argument leaf appearing more than once
// within the same flat sequence as list-typed, mutating the actual tree
// leaves (not copies) so the marking survives into compilation.
//
// The normalization is deliberately the same approximate unwrapping the
// reference implementation performs — OneOrMore(x) contributes x twice,
// Optional is unwrapped unconditionally — which can mark an argument as
// list-typed even in a branch where the pattern only allows one
// occurrence. This is documented in DESIGN.md as inherited, narrow
// behavior kept for compatibility rather than fixed.
func MarkListArguments(root Node) {
	for _, flat := range flatten(root) {
		counts := map[string]int{}
		for _, leaf := range flat {
			if a, ok := leaf.(*Argument); ok {
				counts[a.Name]++
			}
		}
		for _, leaf := range flat {
			if a, ok := leaf.(*Argument); ok && counts[a.Name] > 1 {
				a.List = true
			}
		}
	}
}

// flatten expands root into the set of flat leaf sequences reachable
// through its Either/Sequence/Optional/OneOrMore structure, grounded on
// original_source/docopt.py's Pattern.either worklist algorithm.
func flatten(root Node) [][]Node {
	var result [][]Node
	queue := [][]Node{{root}}

	for len(queue) > 0 {
		group := queue[0]
		queue = queue[1:]

		idx, node := pickCombinator(group)
		if idx < 0 {
			result = append(result, group)
			continue
		}

		rest := make([]Node, 0, len(group)-1)
		rest = append(rest, group[:idx]...)
		rest = append(rest, group[idx+1:]...)

		switch v := node.(type) {
		case *Either:
			for _, c := range v.Children {
				next := make([]Node, 0, 1+len(rest))
				next = append(next, c)
				next = append(next, rest...)
				queue = append(queue, next)
			}
		case *Sequence:
			next := make([]Node, 0, len(v.Children)+len(rest))
			next = append(next, v.Children...)
			next = append(next, rest...)
			queue = append(queue, next)
		case *Optional:
			next := make([]Node, 0, len(v.Children)+len(rest))
			next = append(next, v.Children...)
			next = append(next, rest...)
			queue = append(queue, next)
		case *OneOrMore:
			next := make([]Node, 0, 2*len(v.Children)+len(rest))
			next = append(next, v.Children...)
			next = append(next, v.Children...)
			next = append(next, rest...)
			queue = append(queue, next)
		}
	}
	return result
}

// pickCombinator returns the first node in group of the highest-priority
// combinator type present, Either over Sequence over Optional over
// OneOrMore, or (-1, nil) if group holds only leaves. This fixed by-type
// priority differs from the reference implementation's by-position choice
// when a group mixes combinator types (see DESIGN.md, internal/ast).
func pickCombinator(group []Node) (int, Node) {
	for i, n := range group {
		if _, ok := n.(*Either); ok {
			return i, n
		}
	}
	for i, n := range group {
		if _, ok := n.(*Sequence); ok {
			return i, n
		}
	}
	for i, n := range group {
		if _, ok := n.(*Optional); ok {
			return i, n
		}
	}
	for i, n := range group {
		if _, ok := n.(*OneOrMore); ok {
			return i, n
		}
	}
	return -1, nil
}
