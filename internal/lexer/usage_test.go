package lexer

import "testing"

func TestExtractUsage(t *testing.T) {
	doc := "Naval Fate.\n\nUsage:\n  prog ship <name> move <x> <y>\n\nOptions:\n  -h --help  show help\n"
	usage, err := ExtractUsage(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Usage:\n  prog ship <name> move <x> <y>"
	if usage != want {
		t.Fatalf("ExtractUsage() = %q, want %q", usage, want)
	}
}

func TestExtractUsageMissing(t *testing.T) {
	if _, err := ExtractUsage("no marker here"); err == nil {
		t.Fatal("expected error for missing usage: marker")
	}
}

func TestExtractUsageDuplicate(t *testing.T) {
	doc := "usage: a\n\nusage: b\n"
	if _, err := ExtractUsage(doc); err == nil {
		t.Fatal("expected error for duplicate usage: marker")
	}
}

// A line holding only whitespace ends the usage block too, not just a
// literal blank line (docopt.py's test_docopt.py:98 exercises the same
// case against re.split(r'\n\s*\n', ...)).
func TestExtractUsageWhitespaceOnlyLineIsBlank(t *testing.T) {
	doc := "uSaGe: prog ARG\n\t \t\n bla"
	usage, err := ExtractUsage(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usage != "uSaGe: prog ARG" {
		t.Fatalf("ExtractUsage() = %q, want %q", usage, "uSaGe: prog ARG")
	}
}

func TestFormalUsage(t *testing.T) {
	usage := "Usage:\n  prog ship <name> move <x> <y>\n  prog mine set <x> <y>"
	got := FormalUsage(usage)
	want := "( ship <name> move <x> <y> ) | ( mine set <x> <y> )"
	if got != want {
		t.Fatalf("FormalUsage() = %q, want %q", got, want)
	}
}

func TestFormalUsageEmptyPattern(t *testing.T) {
	if got := FormalUsage("Usage:\n  prog"); got != "( )" {
		t.Fatalf("FormalUsage() = %q, want \"( )\"", got)
	}
}

func TestTokenizePattern(t *testing.T) {
	got := TokenizePattern("( [<name> <name>]... )")
	want := []string{"(", "[", "<name>", "<name>", "]", "...", ")"}
	if len(got) != len(want) {
		t.Fatalf("TokenizePattern() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TokenizePattern()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOptionDescriptionSection(t *testing.T) {
	doc := "Usage:\n  prog [-a]\n\nOptions:\n  -a  flag\n"
	usage, err := ExtractUsage(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	section := OptionDescriptionSection(doc, usage)
	want := "\n\nOptions:\n  -a  flag\n"
	if section != want {
		t.Fatalf("OptionDescriptionSection() = %q, want %q", section, want)
	}
}
