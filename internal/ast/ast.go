// Package ast defines the pattern AST (spec.md §3): the algebraic tree of
// leaves and combinators parsed out of a usage block's formal grammar,
// plus the grammar parser itself (spec.md §4.3) and the list-argument
// analyzer (spec.md §4.8).
//
// Node is modeled as a small closed interface with one struct per
// variant rather than a runtime-typed field, per DESIGN.md's note on the
// reference implementations' polymorphic pattern type.
package ast

import "github.com/arghelp/clipat/internal/catalog"

// Node is any element of the pattern tree: a leaf or a combinator.
type Node interface {
	isNode()
}

// Argument is a positional-argument leaf. List is set by the
// list-argument analyzer when this leaf can bind more than once within
// some branch of the pattern (spec.md §4.8); it starts false.
type Argument struct {
	Name string
	List bool
}

func (*Argument) isNode() {}

// Command is a literal-token leaf, matched only when an incoming
// positional token's text equals Name exactly.
type Command struct {
	Name string
}

func (*Command) isNode() {}

// OptionLeaf is an option occurrence inside the pattern. Identity for
// matching purposes is (Short, Long); the catalog (not this leaf) is the
// source of truth for the option's default value.
type OptionLeaf struct {
	Short string
	Long  string
	Arity int
}

func (*OptionLeaf) isNode() {}

// Name returns the option's display name.
func (o *OptionLeaf) Name() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// AnyOptions is the bare "options" atom: it matches zero or more
// remaining option tokens. Extra holds the catalog options not mentioned
// literally anywhere else in the pattern — computed once, after the full
// document (pattern + option descriptions) has been parsed, by
// FillOptionsShortcut (spec.md §5 / SPEC_FULL.md §5).
type AnyOptions struct {
	Extra []catalog.Option
}

func (*AnyOptions) isNode() {}

// Sequence requires every child to match in order.
type Sequence struct {
	Children []Node
}

func (*Sequence) isNode() {}

// Optional allows zero or one match of each of its children, each
// skippable on its own rather than as a single unit (spec.md §4.7:
// Optional(c1...cn) for n>1 compiles as
// Sequence(Optional(c1), ..., Optional(cn))).
type Optional struct {
	Children []Node
}

func (*Optional) isNode() {}

// Either requires exactly one branch to match. Has at least 2 children
// once built by the grammar parser.
type Either struct {
	Children []Node
}

func (*Either) isNode() {}

// OneOrMore requires one or more repetitions of its single child
// (wrapped in a Sequence if the source syntax grouped several atoms
// under the same "...").
type OneOrMore struct {
	Children []Node
}

func (*OneOrMore) isNode() {}
