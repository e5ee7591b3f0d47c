package clipat

import (
	"testing"

	"github.com/arghelp/clipat/internal/value"
)

// A simplified single-branch ship/move doc, not the full naval_fate.py
// corpus example with its ( ship ... ) | ( ship shoot ... ) | ... branches
// — this package's list-argument analyzer marks a repeated name list-typed
// per occurrence count in its own branch, not by a type-vs-position rule
// identical to the reference implementation's transform(), so a doc with
// several sibling branches sharing argument names would need separate
// per-branch tracing to state its expected result with full confidence.
const shipDoc = `Naval Fate.

Usage:
  prog ship [<name>] move <x> <y> [--speed=<kn>]

Options:
  --speed=<kn>  Speed in knots [default: 10]
`

func TestMatchShipMove(t *testing.T) {
	p, err := Compile(shipDoc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match([]string{"ship", "Guardian", "move", "150", "300", "--speed=20"})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}

	if res["ship"].Bool != true || res["move"].Bool != true {
		t.Fatalf("expected ship and move both true, got %#v %#v", res["ship"], res["move"])
	}
	if res["<name>"].Str != "Guardian" {
		t.Fatalf("expected <name>=Guardian, got %#v", res["<name>"])
	}
	if res["<x>"].Str != "150" || res["<y>"].Str != "300" {
		t.Fatalf("expected <x>=150 <y>=300, got %#v %#v", res["<x>"], res["<y>"])
	}
	if res["--speed"].Str != "20" {
		t.Fatalf("expected --speed=20, got %#v", res["--speed"])
	}
}

// spec.md §8 scenario 2: a bracket group with two occurrences of the same
// argument name must accept a partial match, binding a one-element list
// when only one of the two tokens is present in argv.
func TestMatchBracketGroupPartialMatch(t *testing.T) {
	doc := `Usage:
  prog [<name> <name>]
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match([]string{"10"})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	got := res["<name>"]
	if got.Kind != value.List || len(got.List) != 1 || got.List[0] != "10" {
		t.Fatalf("expected <name>=[\"10\"], got %#v", got)
	}
}

func TestMatchBracketGroupFullMatch(t *testing.T) {
	doc := `Usage:
  prog [<name> <name>]
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match([]string{"10", "20"})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	got := res["<name>"]
	if got.Kind != value.List || len(got.List) != 2 || got.List[0] != "10" || got.List[1] != "20" {
		t.Fatalf("expected <name>=[\"10\",\"20\"], got %#v", got)
	}
}

func TestMatchBracketGroupEmpty(t *testing.T) {
	doc := `Usage:
  prog [<name> <name>]
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match(nil)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	got := res["<name>"]
	if got.Kind != value.List || len(got.List) != 0 {
		t.Fatalf("expected <name>=[], got %#v", got)
	}
}

// Either-branch selection with a short-option cluster carrying an attached
// value.
func TestMatchEitherBranchShortCluster(t *testing.T) {
	doc := `Usage:
  prog (-a | -m <msg>)

Options:
  -a        Use a.
  -m <msg>  Use a message.
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match([]string{"-mhello"})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if res["-m"].Str != "hello" {
		t.Fatalf("expected -m=hello, got %#v", res["-m"])
	}
}

func TestMatchLongOptionPrefixDisambiguation(t *testing.T) {
	doc := `Usage:
  prog [--verbose]

Options:
  --verbose  Be verbose.
  --version  Show version.
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match([]string{"--verb"})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if res["--verbose"].Bool != true {
		t.Fatalf("expected --verbose=true, got %#v", res["--verbose"])
	}
}

func TestMatchDoubleDashSentinel(t *testing.T) {
	doc := `Usage:
  prog [<args>...]
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match([]string{"--", "-a", "-b"})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	got := res["<args>"]
	if got.Kind != value.List || len(got.List) != 3 {
		t.Fatalf("expected 3 positional args (\"--\",\"-a\",\"-b\"), got %#v", got)
	}
}

func TestMatchEmptyPatternEmptyArgv(t *testing.T) {
	doc := `Usage:
  prog
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match(nil)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("expected empty result, got %#v", res)
	}
}

func TestMatchExtraArgvIsUserError(t *testing.T) {
	doc := `Usage:
  prog
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	_, err = p.Match([]string{"unexpected"})
	if err == nil {
		t.Fatal("expected a user error for unmatched extra argv")
	}
	if _, ok := err.(*UserError); !ok {
		t.Fatalf("expected *UserError, got %T", err)
	}
}

func TestMatchSingleDashIsPositional(t *testing.T) {
	doc := `Usage:
  prog <file>
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match([]string{"-"})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if res["<file>"].Str != "-" {
		t.Fatalf("expected <file>=\"-\", got %#v", res["<file>"])
	}
}

func TestMatchLongOptionEqualsEmptyValue(t *testing.T) {
	doc := `Usage:
  prog [--long=<v>]

Options:
  --long=<v>  A value.
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	res, err := p.Match([]string{"--long="})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if res["--long"].Str != "" {
		t.Fatalf("expected --long=\"\", got %#v", res["--long"])
	}
}

func TestParseHelpShortCircuit(t *testing.T) {
	doc := `Usage:
  prog [--help]

Options:
  -h --help  Show help.
`
	res, out, err := Parse(doc, []string{"--help"}, true, "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result on help short-circuit, got %#v", res)
	}
	if out == "" {
		t.Fatal("expected non-empty help output")
	}
}

func TestParseVersionShortCircuit(t *testing.T) {
	doc := `Usage:
  prog [--version]

Options:
  --version  Show version.
`
	res, out, err := Parse(doc, []string{"--version"}, false, "1.2.3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result on version short-circuit, got %#v", res)
	}
	if out != "1.2.3" {
		t.Fatalf("expected version string output, got %q", out)
	}
}

// Pattern.Extras lets a caller holding an already-compiled Pattern (a CLI
// wrapper reusing a cache hit, say) honor the same help/version
// short-circuit Parse applies internally, without recompiling through
// Parse — this is what cmd/clipat's runOnce relies on to keep --cache and
// --help-shortcut/--version-shortcut both working together.
func TestPatternExtrasHelpShortCircuit(t *testing.T) {
	doc := `Usage:
  prog [--help]

Options:
  -h --help  Show help.
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	out, err := p.Extras([]string{"--help"}, true, "", doc)
	if err != nil {
		t.Fatalf("Extras failed: %v", err)
	}
	if out == "" {
		t.Fatal("expected non-empty help output")
	}
}

func TestPatternExtrasNoShortCircuitWhenArgvDoesNotRequestIt(t *testing.T) {
	doc := `Usage:
  prog [--help]

Options:
  -h --help  Show help.
`
	p, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	out, err := p.Extras(nil, true, "", doc)
	if err != nil {
		t.Fatalf("Extras failed: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no short-circuit output, got %q", out)
	}
}
