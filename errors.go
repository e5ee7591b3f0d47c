package clipat

import "github.com/arghelp/clipat/internal/perr"

// LanguageError reports a fault in the help document itself: a missing or
// duplicate usage: block, unbalanced brackets, an unknown option referenced
// in the usage text that cannot be auto-registered, or a contradiction
// between the usage pattern and the option descriptions. It is the
// developer's fault and is never recoverable at runtime (spec.md §7).
type LanguageError = perr.LanguageError

// UserError reports a fault in the argument vector: an unrecognized
// option, an ambiguous long-option prefix, a missing or unwanted option
// value, or an argv that matches no branch of the usage pattern. Usage is
// the printable usage block, included so a CLI wrapper can print it
// alongside the message without re-deriving it (spec.md §7).
type UserError = perr.UserError
