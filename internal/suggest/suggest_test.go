package suggest

import "testing"

func TestBestFindsClosestMatch(t *testing.T) {
	got := Best("--hlp", []string{"--help", "--verbose", "--version"})
	if got != "--help" {
		t.Fatalf("Best() = %q, want --help", got)
	}
}

func TestBestEmptyCandidates(t *testing.T) {
	if got := Best("--hepl", nil); got != "" {
		t.Fatalf("Best() = %q, want empty", got)
	}
}

func TestBestNoReasonableMatch(t *testing.T) {
	got := Best("xyz123", []string{"--help", "--verbose"})
	if got != "" {
		t.Fatalf("Best() = %q, want empty for unrelated target", got)
	}
}

func TestBestExactMatch(t *testing.T) {
	got := Best("--verbose", []string{"--help", "--verbose", "--version"})
	if got != "--verbose" {
		t.Fatalf("Best() = %q, want --verbose", got)
	}
}
