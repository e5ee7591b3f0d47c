package lexer

import (
	"regexp"
	"strings"

	"github.com/arghelp/clipat/internal/perr"
)

var (
	reUsageLine  = regexp.MustCompile(`(?i)usage:`)
	reBlankBreak = regexp.MustCompile(`\n\s*\n`)
)

// ExtractUsage implements spec.md §4.2: locate the substring beginning at
// a case-insensitive "usage:" marker and extending to the first blank
// line (or end of document). Exactly one marker must exist. A line
// holding only whitespace counts as blank too, matching docopt.py's
// re.split(r'\n\s*\n', ...) rather than a literal "\n\n" search.
func ExtractUsage(doc string) (string, error) {
	locs := reUsageLine.FindAllStringIndex(doc, -1)
	if len(locs) == 0 {
		return "", perr.NewLanguage(`"usage:" (case-insensitive) not found.`)
	}
	if len(locs) > 1 {
		return "", perr.NewLanguage(`More than one "usage:" (case-insensitive).`)
	}

	rest := doc[locs[0][0]:]
	if loc := reBlankBreak.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	return strings.TrimSpace(rest), nil
}

// FormalUsage implements spec.md §4.2: drop the leading "usage:" label and
// the program-name token, then rewrite subsequent occurrences of the
// program-name token into ") | (" so each usage line becomes a branch of
// one top-level alternation, wrapped in parentheses.
func FormalUsage(usage string) string {
	_, after, _ := partition(usage, ":")
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return "( )"
	}
	prog := fields[0]

	var b strings.Builder
	b.WriteString("( ")
	for _, tok := range fields[1:] {
		if tok == prog {
			b.WriteString(") | ( ")
		} else {
			b.WriteString(tok)
			b.WriteString(" ")
		}
	}
	b.WriteString(")")
	return b.String()
}

var (
	rePatternPunct = regexp.MustCompile(`([\[\]\(\)\|]|\.\.\.)`)
)

// TokenizePattern implements spec.md §4.3: insert spaces around
// '[', ']', '(', ')', '|', and '...', then split on whitespace.
func TokenizePattern(source string) []string {
	spaced := rePatternPunct.ReplaceAllString(source, " $1 ")
	return strings.Fields(spaced)
}

// OptionDescriptionSection extracts the free-form part of the document
// that follows the usage block — the part the option catalog parser
// scans for description lines (spec.md §4.1).
func OptionDescriptionSection(doc string, usage string) string {
	idx := strings.Index(doc, usage)
	if idx < 0 {
		return doc
	}
	return doc[idx+len(usage):]
}
