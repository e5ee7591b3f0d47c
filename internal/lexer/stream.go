package lexer

// Stream is a cursor over a flat list of raw string tokens, shared by the
// pattern-text tokenizer and the argv tokenizer since both need the same
// move/peek primitives while resolving long and short options
// (spec.md §4.5, §4.6).
type Stream struct {
	toks []string
	pos  int
}

// NewStream wraps toks for sequential consumption.
func NewStream(toks []string) *Stream {
	return &Stream{toks: toks}
}

// Current returns the next unconsumed token, or nil if the stream is
// exhausted.
func (s *Stream) Current() *string {
	if s.pos < len(s.toks) {
		return &s.toks[s.pos]
	}
	return nil
}

// Move consumes and returns the next token, or nil if exhausted.
func (s *Stream) Move() *string {
	if s.pos < len(s.toks) {
		t := s.toks[s.pos]
		s.pos++
		return &t
	}
	return nil
}

// Remaining returns every token not yet consumed, in order.
func (s *Stream) Remaining() []string {
	return append([]string(nil), s.toks[s.pos:]...)
}

// Done reports whether every token has been consumed.
func (s *Stream) Done() bool { return s.pos >= len(s.toks) }
