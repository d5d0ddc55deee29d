package token

// Stream is the ordered token sequence for one source unit.
type Stream []Token

// Len returns the number of tokens in the stream.
func (s Stream) Len() int { return len(s) }

// At returns the token at index i. The caller checks bounds via Len.
func (s Stream) At(i int) Token { return s[i] }

// FilterTrivia returns a stream without comments and doc comments; semantic
// parsing runs on the filtered stream.
func (s Stream) FilterTrivia() Stream {
	out := make(Stream, 0, len(s))
	for _, t := range s {
		if t.Kind.IsTrivia() {
			continue
		}
		out = append(out, t)
	}
	return out
}
