// Package clipat parses a human-readable usage/help document and an
// argument vector into a map of resolved option, argument, and command
// values, without the caller writing any parser specification beyond the
// help text itself.
//
// The heavy lifting — compiling the usage block into a pattern tree,
// lowering that tree to an NFA of linked leaf matchers, and traversing
// the NFA against the lexed argv with frontier-based backtracking — lives
// in the internal/ subpackages. This package exposes two main
// collaborator-facing operations: Parse, which does the whole job end to
// end, and the lower-level Compile/Match pair for callers that want to
// reuse a compiled pattern across many argv vectors. FromCompiled and
// Pattern.Extras support callers that restore a compiled pattern from
// internal/cache.
package clipat
