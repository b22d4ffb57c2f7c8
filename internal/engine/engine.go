package engine

import (
	"errors"
	"strings"
)

// Kind represents token kinds produced by an XML token source.
type Kind int

const (
	KindStart Kind = iota
	KindEnd
	KindText
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindText:
		return "text"
	case KindEOF:
		return "eof"
	}
	return "unknown"
}

// Attr is a single attribute of a start tag. Space holds the prefix or
// namespace as reported by the driver; matching is done on Local only.
type Attr struct {
	Space string
	Local string
	Value string
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	Space  string // prefix or namespace URI, driver dependent
	Name   string // local name for start/end tokens
	Attrs  []Attr
	Text   string
	Offset int64
}

// Attr returns the value of the attribute with the given local name.
func (t Token) Attr(local string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// IsBlank reports whether a text token carries only XML whitespace.
func (t Token) IsBlank() bool {
	return strings.Trim(t.Text, " \t\r\n") == ""
}

// TokenSource is a minimal interface required by the engine. Once input is
// exhausted NextToken keeps returning a KindEOF token with a nil error.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// TokenSink receives tokens in document order.
type TokenSink interface {
	ProcInst(target, inst string) error
	StartElement(name string, attrs ...Attr) error
	Text(s string) error
	EndElement(name string) error
	Flush() error
}

// QName renders an attribute name in prefix:local form.
func (a Attr) QName() string {
	if a.Space == "" {
		return a.Local
	}
	return a.Space + ":" + a.Local
}

// ErrNestedElement is returned by ReadText when a leaf contains child elements.
var ErrNestedElement = errors.New("element content where text was expected")

// ErrEOF is returned by ReadText and Skip when input ends inside an element.
var ErrEOF = errors.New("unexpected end of input")

// ReadText collects the character data of the element opened by start and
// consumes its end tag. The returned token is the end tag on success, or the
// offending token when a child element or end of input is met first.
func ReadText(src TokenSource, start Token) (string, Token, error) {
	var b strings.Builder
	for {
		tok, err := src.NextToken()
		if err != nil {
			return "", Token{}, err
		}
		switch tok.Kind {
		case KindText:
			b.WriteString(tok.Text)
		case KindEnd:
			return b.String(), tok, nil
		case KindStart:
			return "", tok, ErrNestedElement
		case KindEOF:
			return "", tok, ErrEOF
		}
	}
}

// Skip consumes tokens until the end tag closing the currently open element.
// depth is the number of elements already open relative to the caller (1 when
// the caller just consumed a start tag).
func Skip(src TokenSource, depth int) error {
	for depth > 0 {
		tok, err := src.NextToken()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case KindStart:
			depth++
		case KindEnd:
			depth--
		case KindEOF:
			return ErrEOF
		}
	}
	return nil
}

// Tokens replays a fixed token slice. Tests use it to drive decoders
// without an XML reader.
type Tokens struct {
	toks []Token
	pos  int
}

// NewTokens returns a TokenSource over toks.
func NewTokens(toks ...Token) *Tokens { return &Tokens{toks: toks} }

func (s *Tokens) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{Kind: KindEOF, Offset: -1}, nil
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *Tokens) Location() int64 { return int64(s.pos) }
