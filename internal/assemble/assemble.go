// Package assemble implements the result assembler (spec.md §4.10): it
// merges catalog defaults, the raw lexed argv's option tokens, the
// pattern's own argument/command leaf defaults, and finally the
// matcher's bindings into the map returned to the caller.
package assemble

import (
	"github.com/arghelp/clipat/internal/ast"
	"github.com/arghelp/clipat/internal/catalog"
	"github.com/arghelp/clipat/internal/lexer"
	"github.com/arghelp/clipat/internal/nfa"
	"github.com/arghelp/clipat/internal/value"
)

// Build layers the four sources in the order spec.md §4.10 requires:
// catalog defaults, then the lexed argv's option tokens (so options
// consumed generically by an AnyOptions leaf still surface), then every
// argument/command leaf's own default, then the matcher's bindings.
func Build(cat *catalog.Catalog, root ast.Node, argv []lexer.Token, bindings value.Map) value.Map {
	out := value.Map{}

	for _, o := range cat.Options() {
		out[o.Name()] = o.Default
	}

	for _, t := range argv {
		if t.Kind == lexer.OptionTok {
			out[t.Name()] = t.Value
		}
	}

	overlayLeafDefaults(root, out)

	for k, v := range bindings {
		out[k] = v
	}

	return out
}

// BuildFromGraph is Build for a Pattern reconstructed from
// internal/cache, which discards the AST once the graph is compiled. It
// derives the same argument/command default overlay by scanning the
// compiled graph's own leaf nodes instead of walking the tree — every
// leaf the tree could reach also appears as some LeafNode in the graph,
// so the two produce identical results.
func BuildFromGraph(cat *catalog.Catalog, graph *nfa.Graph, argv []lexer.Token, bindings value.Map) value.Map {
	out := value.Map{}

	for _, o := range cat.Options() {
		out[o.Name()] = o.Default
	}

	for _, t := range argv {
		if t.Kind == lexer.OptionTok {
			out[t.Name()] = t.Value
		}
	}

	for _, n := range graph.Nodes {
		if n.Kind != nfa.LeafNode {
			continue
		}
		overlayLeafDefaults(n.Leaf, out)
	}

	for k, v := range bindings {
		out[k] = v
	}

	return out
}

// ToInterfaceMap converts m to the plain map[string]any shape Schema
// validates, for callers that would rather work with interface{} values
// than value.Value directly.
func ToInterfaceMap(m value.Map) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Interface()
	}
	return out
}

func overlayLeafDefaults(n ast.Node, out value.Map) {
	switch v := n.(type) {
	case *ast.Argument:
		if v.List {
			out[v.Name] = value.NewList(nil)
		} else {
			out[v.Name] = value.Nil
		}
	case *ast.Command:
		out[v.Name] = value.NewBool(false)
	case *ast.Sequence:
		for _, c := range v.Children {
			overlayLeafDefaults(c, out)
		}
	case *ast.Optional:
		for _, c := range v.Children {
			overlayLeafDefaults(c, out)
		}
	case *ast.Either:
		for _, c := range v.Children {
			overlayLeafDefaults(c, out)
		}
	case *ast.OneOrMore:
		for _, c := range v.Children {
			overlayLeafDefaults(c, out)
		}
	}
}
