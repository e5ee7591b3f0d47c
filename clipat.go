package clipat

import (
	"strings"

	"github.com/arghelp/clipat/internal/assemble"
	"github.com/arghelp/clipat/internal/ast"
	"github.com/arghelp/clipat/internal/catalog"
	"github.com/arghelp/clipat/internal/lexer"
	"github.com/arghelp/clipat/internal/match"
	"github.com/arghelp/clipat/internal/nfa"
	"github.com/arghelp/clipat/internal/value"
)

// Value is the tagged variant every bound name resolves to: a string, a
// bool, a list of strings, or null (spec.md §6).
type Value = value.Value

// Result is the map Parse returns on success: display name -> Value.
type Result = value.Map

// Pattern is a compiled help document: the option catalog, the pattern
// tree, and the NFA built from it, reusable across many Match calls
// against the same document (spec.md §1's compile/match split).
type Pattern struct {
	catalog *catalog.Catalog
	root    ast.Node
	graph   *nfa.Graph
	usage   string
}

// Usage returns the printable usage block extracted from the document
// this Pattern was compiled from.
func (p *Pattern) Usage() string { return p.usage }

// Graph and CatalogSnapshot expose the compiled internals so a caller
// can round-trip a Pattern through internal/cache without going through
// Compile again. FromCompiled rebuilds a Pattern from a cached graph and
// catalog plus the document's usage text.
func (p *Pattern) Graph() *nfa.Graph                 { return p.graph }
func (p *Pattern) CatalogSnapshot() *catalog.Catalog { return p.catalog }

// FromCompiled rebuilds a Pattern from a previously cached graph and
// catalog (internal/cache) and the document's usage text, skipping the
// pattern parse entirely. Match on the result uses the graph's own leaf
// nodes (rather than the discarded AST) to overlay argument/command
// defaults, so the result is identical to one produced by Compile.
func FromCompiled(graph *nfa.Graph, cat *catalog.Catalog, usage string) *Pattern {
	return &Pattern{catalog: cat, graph: graph, usage: usage}
}

// Compile parses doc into a Pattern: the option catalog and pattern AST
// from the descriptions and usage blocks (spec.md §4.1-§4.3), enriched
// with the "[options]" shortcut diff (SPEC_FULL.md §5) and list-argument
// marking (spec.md §4.8), then lowered to an NFA (spec.md §4.7).
//
// Any fault in doc itself — a missing or duplicate usage: block,
// unbalanced brackets, an unresolvable option reference — surfaces as a
// *LanguageError.
func Compile(doc string) (*Pattern, error) {
	usage, err := lexer.ExtractUsage(doc)
	if err != nil {
		return nil, err
	}

	cat := catalog.New()
	for _, o := range catalog.ParseDescriptions(lexer.OptionDescriptionSection(doc, usage)) {
		cat.Register(o)
	}

	formal := lexer.FormalUsage(usage)
	root, err := ast.Parse(lexer.TokenizePattern(formal), cat)
	if err != nil {
		return nil, err
	}
	ast.FillOptionsShortcut(root, cat)
	ast.MarkListArguments(root)

	graph := nfa.Compile(root)
	return &Pattern{catalog: cat, root: root, graph: graph, usage: usage}, nil
}

// Extras checks argv for the same -h/--help or --version short-circuit
// Parse applies before compiling, for a caller that already holds a
// compiled Pattern (e.g. a cache hit from internal/cache) and wants to
// honor it without going through Parse's own Compile call. doc is the
// full document text to print verbatim on a help match; it returns the
// text to print, or "" if neither shortcut applies.
func (p *Pattern) Extras(argv []string, help bool, version string, doc string) (string, error) {
	tokens, err := lexer.LexArgv(argv, p.catalog)
	if err != nil {
		return "", withUsage(err, p.usage)
	}
	return extras(tokens, help, version, doc), nil
}

// Match lexes argv against p's catalog and traverses the compiled NFA,
// returning the assembled Result (spec.md §4.4-§4.10). A *UserError
// carries p's usage text so a caller can print it alongside the message.
func (p *Pattern) Match(argv []string) (Result, error) {
	tokens, err := lexer.LexArgv(argv, p.catalog)
	if err != nil {
		return nil, withUsage(err, p.usage)
	}

	bindings, err := match.Match(p.graph, tokens)
	if err != nil {
		return nil, withUsage(err, p.usage)
	}

	if p.root == nil {
		return assemble.BuildFromGraph(p.catalog, p.graph, tokens, bindings), nil
	}
	return assemble.Build(p.catalog, p.root, tokens, bindings), nil
}

// Parse is the library's single entry point: compile doc and match argv
// against it in one call (spec.md §6's `parse(doc, argv)`).
//
// When help is true and argv requests "-h"/"--help", or version is
// non-empty and argv requests "--version", Parse short-circuits before
// matching and returns the text to print as output, with a nil Result
// and a nil error — mirroring the reference implementation's own
// help/version short-circuit (original_source/docopt.py's extras()),
// adapted so the caller prints and exits rather than the library doing
// so itself.
func Parse(doc string, argv []string, help bool, version string) (result Result, output string, err error) {
	p, err := Compile(doc)
	if err != nil {
		return nil, "", err
	}

	tokens, err := lexer.LexArgv(argv, p.catalog)
	if err != nil {
		return nil, "", withUsage(err, p.usage)
	}

	if out := extras(tokens, help, version, doc); out != "" {
		return nil, out, nil
	}

	bindings, err := match.Match(p.graph, tokens)
	if err != nil {
		return nil, "", withUsage(err, p.usage)
	}

	return assemble.Build(p.catalog, p.root, tokens, bindings), "", nil
}

func extras(tokens []lexer.Token, help bool, version string, doc string) string {
	if help {
		for _, t := range tokens {
			if t.Kind == lexer.OptionTok && (t.Short == "-h" || t.Long == "--help") && t.Value.Kind == value.Bool && t.Value.Bool {
				return strings.Trim(doc, "\n")
			}
		}
	}
	if version != "" {
		for _, t := range tokens {
			if t.Kind == lexer.OptionTok && t.Long == "--version" && t.Value.Kind == value.Bool && t.Value.Bool {
				return version
			}
		}
	}
	return ""
}

func withUsage(err error, usage string) error {
	if ue, ok := err.(*UserError); ok {
		return ue.WithUsage(usage)
	}
	return err
}
