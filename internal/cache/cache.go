// Package cache persists a compiled pattern (NFA graph plus option
// catalog) keyed by the digest of the help document that produced it, so
// a CLI wrapper invoked repeatedly against the same doc can skip
// recompilation (SPEC_FULL.md §4).
//
// The NFA graph's leaf field is a polymorphic ast.Node, which CBOR
// cannot round-trip directly; it is flattened into a tagged struct
// first, the same way the teacher's core/planfmt.CanonicalNode flattens
// its own execution-tree union into a Type-discriminated struct before
// encoding.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/sha3"

	"github.com/arghelp/clipat/internal/ast"
	"github.com/arghelp/clipat/internal/catalog"
	"github.com/arghelp/clipat/internal/nfa"
	"github.com/arghelp/clipat/internal/value"
)

// Key returns the hex-encoded sha3-256 digest of doc, used both as the
// cache filename and, conceptually, the compiled pattern's identity.
func Key(doc string) string {
	sum := sha3.Sum256([]byte(doc))
	return fmt.Sprintf("%x", sum)
}

// Dir returns the on-disk directory cache entries are stored under,
// resolved the way the teacher resolves its own artifacts: the user
// cache directory plus a fixed subdirectory, no config library involved.
func Dir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cache: resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "clipat"), nil
}

// Load reads the cache entry for doc, if present. ok is false (with a
// nil error) when no entry exists yet.
func Load(dir, doc string) (g *nfa.Graph, cat *catalog.Catalog, ok bool, err error) {
	path := filepath.Join(dir, Key(doc)+".cbor")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("cache: read %s: %w", path, err)
	}

	var e entry
	if err := cbor.Unmarshal(raw, &e); err != nil {
		return nil, nil, false, fmt.Errorf("cache: decode %s: %w", path, err)
	}
	g, cat = e.toLive()
	return g, cat, true, nil
}

// Store writes the compiled graph and catalog for doc into dir,
// creating it if necessary, using the same canonical-CBOR encoding the
// teacher uses for its own plan digests (core/planfmt/canonical.go).
func Store(dir, doc string, g *nfa.Graph, cat *catalog.Catalog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cache: create %s: %w", dir, err)
	}

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("cache: build cbor encoder: %w", err)
	}
	raw, err := encMode.Marshal(fromLive(g, cat))
	if err != nil {
		return fmt.Errorf("cache: encode entry: %w", err)
	}

	path := filepath.Join(dir, Key(doc)+".cbor")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("cache: write %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}

// entry is the on-disk shape of one cache file.
type entry struct {
	Nodes   []cachedNode
	Start   nfa.ID
	Options []cachedOption
}

type cachedNode struct {
	Kind nfa.NodeKind
	Leaf *cachedLeaf
	Next nfa.ID
	Out1 nfa.ID
	Out2 nfa.ID
	Back bool
}

// cachedLeaf flattens the ast.Node sum type into one discriminated
// struct; Kind selects which fields are meaningful.
type cachedLeaf struct {
	Kind  string // "argument" | "command" | "option" | "anyoptions" | "identity"
	Name  string
	List  bool
	Short string
	Long  string
	Arity int
	Extra []cachedOption
}

type cachedOption struct {
	Short    string
	Long     string
	Arity    int
	Default  cachedValue
	HasValue bool
}

type cachedValue struct {
	Kind value.Kind
	Bool bool
	Str  string
	List []string
	Int  int
}

func fromLive(g *nfa.Graph, cat *catalog.Catalog) entry {
	e := entry{Start: g.Start}
	e.Nodes = make([]cachedNode, len(g.Nodes))
	for i, n := range g.Nodes {
		cn := cachedNode{Kind: n.Kind, Next: n.Next, Out1: n.Out1, Out2: n.Out2, Back: n.Back}
		if n.Kind == nfa.LeafNode {
			cl := toCachedLeaf(n.Leaf)
			cn.Leaf = &cl
		}
		e.Nodes[i] = cn
	}
	for _, o := range cat.Options() {
		e.Options = append(e.Options, toCachedOption(o))
	}
	return e
}

func (e entry) toLive() (*nfa.Graph, *catalog.Catalog) {
	g := &nfa.Graph{Start: e.Start}
	g.Nodes = make([]nfa.Node, len(e.Nodes))
	for i, cn := range e.Nodes {
		n := nfa.Node{Kind: cn.Kind, Next: cn.Next, Out1: cn.Out1, Out2: cn.Out2, Back: cn.Back}
		if cn.Leaf != nil {
			n.Leaf = fromCachedLeaf(*cn.Leaf)
		}
		g.Nodes[i] = n
	}

	cat := catalog.New()
	for _, co := range e.Options {
		cat.Register(fromCachedOption(co))
	}
	return g, cat
}

func toCachedLeaf(n ast.Node) cachedLeaf {
	switch v := n.(type) {
	case *ast.Argument:
		return cachedLeaf{Kind: "argument", Name: v.Name, List: v.List}
	case *ast.Command:
		return cachedLeaf{Kind: "command", Name: v.Name}
	case *ast.OptionLeaf:
		return cachedLeaf{Kind: "option", Short: v.Short, Long: v.Long, Arity: v.Arity}
	case *ast.AnyOptions:
		cl := cachedLeaf{Kind: "anyoptions"}
		for _, o := range v.Extra {
			cl.Extra = append(cl.Extra, toCachedOption(o))
		}
		return cl
	default:
		return cachedLeaf{Kind: "identity"}
	}
}

func fromCachedLeaf(cl cachedLeaf) ast.Node {
	switch cl.Kind {
	case "argument":
		return &ast.Argument{Name: cl.Name, List: cl.List}
	case "command":
		return &ast.Command{Name: cl.Name}
	case "option":
		return &ast.OptionLeaf{Short: cl.Short, Long: cl.Long, Arity: cl.Arity}
	case "anyoptions":
		ao := &ast.AnyOptions{}
		for _, o := range cl.Extra {
			ao.Extra = append(ao.Extra, fromCachedOption(o))
		}
		return ao
	default:
		return &ast.Sequence{}
	}
}

func toCachedOption(o catalog.Option) cachedOption {
	return cachedOption{
		Short:    o.Short,
		Long:     o.Long,
		Arity:    o.Arity,
		HasValue: o.HasValue,
		Default:  cachedValue{Kind: o.Default.Kind, Bool: o.Default.Bool, Str: o.Default.Str, List: o.Default.List, Int: o.Default.Int},
	}
}

func fromCachedOption(co cachedOption) catalog.Option {
	return catalog.Option{
		Short:    co.Short,
		Long:     co.Long,
		Arity:    co.Arity,
		HasValue: co.HasValue,
		Default:  value.Value{Kind: co.Default.Kind, Bool: co.Default.Bool, Str: co.Default.Str, List: co.Default.List, Int: co.Default.Int},
	}
}
