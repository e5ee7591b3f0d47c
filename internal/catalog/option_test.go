package catalog

import (
	"testing"

	"github.com/arghelp/clipat/internal/value"
)

func TestParseDescriptionsBasic(t *testing.T) {
	doc := `Options:
  -a            Enable a
  -r            Enable r
  -m <msg>      Attach a message [default: ]
  --speed=<kn>  Set speed [default: 10]
  --verbose     Be loud
`
	opts := ParseDescriptions(doc)
	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d: %#v", len(opts), opts)
	}

	byName := map[string]Option{}
	for _, o := range opts {
		byName[o.Name()] = o
	}

	if o := byName["-a"]; o.Arity != 0 || !o.Default.Equal(value.NewBool(false)) {
		t.Errorf("-a: got %#v", o)
	}
	if o := byName["-m"]; o.Arity != 1 {
		t.Errorf("-m should be arity 1, got %#v", o)
	}
	if o := byName["--speed"]; !o.Default.Equal(value.NewString("10")) {
		t.Errorf("--speed default = %#v, want \"10\"", o.Default)
	}
	if o := byName["--verbose"]; o.Arity != 0 {
		t.Errorf("--verbose should be arity 0, got %#v", o)
	}
}

func TestParseDescriptionsIgnoresNonOptionLines(t *testing.T) {
	doc := "Usage:\n  prog [-a]\n\nOptions:\n  -a  flag\n"
	opts := ParseDescriptions(doc)
	if len(opts) != 1 {
		t.Fatalf("expected 1 option, got %d: %#v", len(opts), opts)
	}
}

func TestCatalogFindPrefixAndExact(t *testing.T) {
	cat := New()
	cat.Register(Option{Long: "--version"})
	cat.Register(Option{Long: "--verbose"})

	if got := cat.Find("--ver"); len(got) != 2 {
		t.Fatalf("expected both options as prefix matches, got %#v", got)
	}
	if _, ok := cat.FindExactLong("--version"); !ok {
		t.Fatal("expected exact match for --version")
	}
	if got := cat.Find("--verb"); len(got) != 1 || got[0].Long != "--verbose" {
		t.Fatalf("expected only --verbose, got %#v", got)
	}
}

func TestCatalogFindShort(t *testing.T) {
	cat := New()
	cat.Register(Option{Short: "-a"})
	cat.Register(Option{Short: "-b"})

	if got := cat.FindShort('a'); len(got) != 1 || got[0].Short != "-a" {
		t.Fatalf("FindShort('a') = %#v", got)
	}
	if got := cat.FindShort('z'); len(got) != 0 {
		t.Fatalf("FindShort('z') = %#v, want none", got)
	}
}

func TestOptionSameIdentity(t *testing.T) {
	a := Option{Short: "-a", Long: "--all"}
	b := Option{Short: "-a", Long: "--all", Default: value.NewBool(true)}
	c := Option{Short: "-a"}
	if !a.SameIdentity(b) {
		t.Error("expected a and b to share identity despite differing Default")
	}
	if a.SameIdentity(c) {
		t.Error("expected a and c to differ (Long mismatch)")
	}
}
