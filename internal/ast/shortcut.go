package ast

import "github.com/arghelp/clipat/internal/catalog"

// FillOptionsShortcut implements the "[options]" enrichment described in
// SPEC_FULL.md §5 (grounded on original_source/docopt.py's use of
// Pattern.fix() / the any-options diff against the full catalog): once
// the whole document has been parsed, every AnyOptions leaf is populated
// with the catalog options that are not mentioned literally anywhere
// else in the pattern. Neither the matcher nor the result assembler reads
// Extra (the assembler takes every option's default from the catalog);
// internal/cache carries it along with the rest of the leaf.
func FillOptionsShortcut(root Node, cat *catalog.Catalog) {
	seen := map[string]bool{}
	collectOptionIdentities(root, seen)
	applyShortcut(root, cat, seen)
}

func collectOptionIdentities(n Node, seen map[string]bool) {
	if opt, ok := n.(*OptionLeaf); ok {
		seen[identityKey(opt.Short, opt.Long)] = true
		return
	}
	for _, c := range children(n) {
		collectOptionIdentities(c, seen)
	}
}

func applyShortcut(n Node, cat *catalog.Catalog, seen map[string]bool) {
	if ao, ok := n.(*AnyOptions); ok {
		for _, o := range cat.Options() {
			if !seen[identityKey(o.Short, o.Long)] {
				ao.Extra = append(ao.Extra, o)
			}
		}
		return
	}
	for _, c := range children(n) {
		applyShortcut(c, cat, seen)
	}
}

func identityKey(short, long string) string {
	return short + "\x00" + long
}

// children returns n's immediate combinator children, or nil for a leaf.
func children(n Node) []Node {
	switch v := n.(type) {
	case *Sequence:
		return v.Children
	case *Optional:
		return v.Children
	case *Either:
		return v.Children
	case *OneOrMore:
		return v.Children
	default:
		return nil
	}
}
