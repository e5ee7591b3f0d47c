package lexer

import (
	"testing"

	"github.com/arghelp/clipat/internal/catalog"
)

func TestLexArgvSingleDashIsPositional(t *testing.T) {
	toks, err := LexArgv([]string{"-"}, catalog.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != ArgumentTok || toks[0].Text != "-" {
		t.Fatalf("unexpected tokens: %#v", toks)
	}
}

func TestLexArgvDoubleDashSentinel(t *testing.T) {
	toks, err := LexArgv([]string{"--", "-o"}, newCatalog(catalog.Option{Short: "-o"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected 2 positional tokens, got %#v", toks)
	}
	if toks[0].Kind != ArgumentTok || toks[0].Text != "--" {
		t.Fatalf("expected \"--\" re-emitted as positional, got %#v", toks[0])
	}
	if toks[1].Kind != ArgumentTok || toks[1].Text != "-o" {
		t.Fatalf("expected \"-o\" after -- to stay positional, got %#v", toks[1])
	}
}

func TestLexArgvOptionsAndArguments(t *testing.T) {
	cat := newCatalog(catalog.Option{Short: "-a"}, catalog.Option{Long: "--speed", Arity: 1})
	toks, err := LexArgv([]string{"ship", "--speed=20", "-a"}, cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %#v", toks)
	}
	if toks[0].Kind != ArgumentTok || toks[0].Text != "ship" {
		t.Fatalf("token 0 = %#v", toks[0])
	}
	if toks[1].Kind != OptionTok || toks[1].Long != "--speed" || toks[1].Value.Str != "20" {
		t.Fatalf("token 1 = %#v", toks[1])
	}
	if toks[2].Kind != OptionTok || toks[2].Short != "-a" {
		t.Fatalf("token 2 = %#v", toks[2])
	}
}

func TestLexArgvUnrecognizedOption(t *testing.T) {
	if _, err := LexArgv([]string{"--nope"}, catalog.New()); err == nil {
		t.Fatal("expected error for unrecognized long option")
	}
}
