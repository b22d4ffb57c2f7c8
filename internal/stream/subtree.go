package stream

import (
	"errors"

	eng "github.com/reoring/kontrolluppgift/internal/engine"
)

// ElementSource wraps an engine.TokenSource positioned just after a start tag
// and exposes only the remaining content of that element. The matching end
// tag is returned once, after which the source reports KindEOF.
type ElementSource struct {
	inner eng.TokenSource
	// depth counts open elements; the enclosing element counts as 1.
	depth int
	done  bool
}

// NewElementSource constructs a view over the rest of the element whose start
// tag was already consumed from inner.
func NewElementSource(inner eng.TokenSource) *ElementSource {
	return &ElementSource{inner: inner, depth: 1}
}

func (s *ElementSource) NextToken() (eng.Token, error) {
	if s.done {
		return eng.Token{Kind: eng.KindEOF, Offset: s.inner.Location()}, nil
	}
	tok, err := s.inner.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	switch tok.Kind {
	case eng.KindStart:
		s.depth++
	case eng.KindEnd:
		s.depth--
		if s.depth == 0 {
			s.done = true
		}
	case eng.KindEOF:
		s.done = true
	}
	return tok, nil
}

func (s *ElementSource) Location() int64 { return s.inner.Location() }

// Drain consumes everything up to and including the enclosing end tag. It
// reports whether that end tag was seen before input ran out.
func (s *ElementSource) Drain() (bool, error) {
	if s.done {
		return s.depth == 0, nil
	}
	switch err := eng.Skip(s, s.depth); {
	case errors.Is(err, eng.ErrEOF):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}
