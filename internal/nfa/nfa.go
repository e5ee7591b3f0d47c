// Package nfa compiles a pattern AST into the linked automaton described
// in spec.md §3/§4.7: leaf matchers and Split fan-out nodes addressed by
// integer id rather than pointer, so the back-edges OneOrMore introduces
// never create an ownership cycle in the Go sense (spec.md §9, "Cyclic
// pattern graph").
package nfa

import "github.com/arghelp/clipat/internal/ast"

// NodeKind tags a Graph node.
type NodeKind uint8

const (
	// LeafNode wraps exactly one ast leaf and has one forward edge.
	LeafNode NodeKind = iota
	// SplitNode never consumes a token; both outgoing edges are explored.
	SplitNode
	// EndNode is the terminal sentinel; success requires no tokens left.
	EndNode
)

// ID addresses a node within a Graph's arena.
type ID int

// noID marks an edge that has not been patched to a successor yet.
const noID ID = -1

// Node is one arena-allocated automaton node.
type Node struct {
	Kind NodeKind

	// LeafNode fields.
	Leaf ast.Node

	// Forward edges. LeafNode uses Next only; SplitNode uses both;
	// EndNode uses neither.
	Next ID
	Out1 ID
	Out2 ID

	// Back marks a SplitNode whose Out1 edge loops back to an
	// already-emitted node (a OneOrMore repetition edge), so traversal
	// and debug printing can avoid re-descending forever.
	Back bool
}

// Graph is a compiled pattern: an arena of Nodes plus the id of the
// unique entry point. Start is never itself an EndNode: even an empty
// pattern compiles to an identity leaf in front of End.
type Graph struct {
	Nodes []Node
	Start ID
}

func (g *Graph) alloc(n Node) ID {
	g.Nodes = append(g.Nodes, n)
	return ID(len(g.Nodes) - 1)
}

func (g *Graph) at(id ID) *Node { return &g.Nodes[id] }

// edgeSel names one of a node's edge fields. tailSlot resolves its
// target through the Graph's current slice at patch time rather than
// through a captured pointer: alloc grows g.Nodes with append, which may
// reallocate the backing array, so a *ID taken before a later alloc
// would silently patch a stale copy.
type edgeSel uint8

const (
	edgeNext edgeSel = iota
	edgeOut1
	edgeOut2
)

// tailSlot identifies one outgoing edge still open for patching.
type tailSlot struct {
	node ID
	edge edgeSel
}

type tails []tailSlot

func (t tails) patch(g *Graph, to ID) {
	for _, s := range t {
		switch s.edge {
		case edgeNext:
			g.Nodes[s.node].Next = to
		case edgeOut1:
			g.Nodes[s.node].Out1 = to
		case edgeOut2:
			g.Nodes[s.node].Out2 = to
		}
	}
}

// Compile lowers root into a Graph, bottom-up, per spec.md §4.7. The
// list-argument analyzer (ast.MarkListArguments) must have already run
// over root so that list-typed Argument leaves are marked before the
// leaves are captured into LeafNodes.
func Compile(root ast.Node) *Graph {
	g := &Graph{}
	entry, open := compileNode(g, root)
	end := g.alloc(Node{Kind: EndNode, Next: noID, Out1: noID, Out2: noID})
	open.patch(g, end)
	g.Start = entry
	return g
}

func compileNode(g *Graph, n ast.Node) (ID, tails) {
	switch v := n.(type) {
	case *ast.Sequence:
		return compileSequence(g, v.Children)
	case *ast.Optional:
		return compileOptional(g, v.Children)
	case *ast.Either:
		return compileEither(g, v.Children)
	case *ast.OneOrMore:
		return compileOneOrMore(g, v.Children[0])
	default:
		return compileLeaf(g, n)
	}
}

func compileLeaf(g *Graph, leaf ast.Node) (ID, tails) {
	id := g.alloc(Node{Kind: LeafNode, Leaf: leaf, Next: noID, Out1: noID, Out2: noID})
	return id, tails{{node: id, edge: edgeNext}}
}

// compileSequence chains each child's tails to the next child's entry,
// returning the first child's entry and the last child's open tails. An
// empty sequence compiles to a single identity leaf (spec.md §4.7).
func compileSequence(g *Graph, children []ast.Node) (ID, tails) {
	if len(children) == 0 {
		return compileLeaf(g, &ast.Sequence{})
	}
	entry, open := compileNode(g, children[0])
	for _, c := range children[1:] {
		nextEntry, nextOpen := compileNode(g, c)
		open.patch(g, nextEntry)
		open = nextOpen
	}
	return entry, open
}

// compileOptional lowers Optional's single grouped child (the parser
// always supplies exactly one) into the chain the AST doc comment
// describes: Optional([c1, c2, ... cn]) compiles as if it had been
// written Sequence(Optional(c1), ..., Optional(cn)), each element
// independently skippable, rather than one Split bypassing the whole
// group atomically. Without this, "[<name> <name>]" could only ever
// match zero or two arguments, never one — the reference
// implementation's bracket groups let each element fail to match on
// its own without failing the group.
func compileOptional(g *Graph, children []ast.Node) (ID, tails) {
	items := children
	if len(children) == 1 {
		if seq, ok := children[0].(*ast.Sequence); ok {
			items = seq.Children
		}
	}
	if len(items) == 0 {
		return compileOneOptional(g, &ast.Sequence{})
	}

	entry, open := compileOneOptional(g, items[0])
	for _, it := range items[1:] {
		nextEntry, nextOpen := compileOneOptional(g, it)
		open.patch(g, nextEntry)
		open = nextOpen
	}
	return entry, open
}

// compileOneOptional wraps a single element in a Split whose skip edge
// (Out2) bypasses just that element.
func compileOneOptional(g *Graph, item ast.Node) (ID, tails) {
	inner, open := compileNode(g, item)
	id := g.alloc(Node{Kind: SplitNode, Out1: inner, Out2: noID})
	all := append(tails{{node: id, edge: edgeOut2}}, open...)
	return id, all
}

// compileEither right-folds more than two branches into nested binary
// Splits, left-biased so Out1 always precedes Out2 in frontier order
// (spec.md §4.9 "leftmost branch preference").
func compileEither(g *Graph, children []ast.Node) (ID, tails) {
	if len(children) == 1 {
		return compileNode(g, children[0])
	}
	firstEntry, firstOpen := compileNode(g, children[0])
	restEntry, restOpen := compileEither(g, children[1:])
	id := g.alloc(Node{Kind: SplitNode, Out1: firstEntry, Out2: restEntry})
	all := append(tails{}, firstOpen...)
	all = append(all, restOpen...)
	return id, all
}

// compileOneOrMore compiles child once, then appends a Split whose Out1
// loops back to the loop target (the repetition edge, flagged Back) and
// whose Out2 is the single remaining open tail. A dummy identity leaf
// precedes child so the loop target is always a LeafNode, never a Split
// that child itself might start with (spec.md §4.7).
func compileOneOrMore(g *Graph, child ast.Node) (ID, tails) {
	dummyEntry, dummyOpen := compileLeaf(g, &ast.Sequence{})
	childEntry, childOpen := compileNode(g, child)
	dummyOpen.patch(g, childEntry)

	id := g.alloc(Node{Kind: SplitNode, Out1: dummyEntry, Out2: noID, Back: true})
	childOpen.patch(g, id)
	return dummyEntry, tails{{node: id, edge: edgeOut2}}
}
