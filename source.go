package kontrolluppgift

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"sync"

	eng "github.com/reoring/kontrolluppgift/internal/engine"
	"github.com/reoring/kontrolluppgift/source/stdxml"
)

// TokenKind enumerates XML token kinds. The alias and constants mirror the
// internal engine so drivers outside this module can produce tokens.
type TokenKind = eng.Kind

const (
	TokenStart TokenKind = eng.KindStart
	TokenEnd   TokenKind = eng.KindEnd
	TokenText  TokenKind = eng.KindText
	TokenEOF   TokenKind = eng.KindEOF
)

// Token describes a token in the input stream: an element start with its
// attributes, an element end, character data, or the end of input. Offset
// records the byte position when known (-1 otherwise).
type Token = eng.Token

// Attr is an attribute of a start tag.
type Attr = eng.Attr

// Source abstracts over streaming XML pull parsers. After the last token a
// Source keeps returning a TokenEOF token with a nil error.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// Sink receives the token stream produced by encoders. Element names may be
// qualified ("i:Skatteverket"); Flush completes the document.
type Sink interface {
	ProcInst(target, inst string) error
	StartElement(name string, attrs ...Attr) error
	Text(s string) error
	EndElement(name string) error
	Flush() error
}

// XMLDriver converts XML input into a Source and output into a Sink via a
// pluggable SPI. The default implementation is based on encoding/xml and may
// be swapped with SetXMLDriver.
type XMLDriver interface {
	NewReader(r io.Reader) Source
	NewSink(w io.Writer, opt EncodeOpt) Sink
	Name() string
}

var (
	xmlDriverMu      sync.RWMutex
	currentXMLDriver XMLDriver = defaultXMLDriver{}
	xmlDrivers                 = map[string]XMLDriver{defaultXMLDriver{}.Name(): defaultXMLDriver{}}
)

// SetXMLDriver replaces the global XML driver and registers it by name; nil
// values are ignored.
func SetXMLDriver(d XMLDriver) {
	if d == nil {
		return
	}
	xmlDriverMu.Lock()
	currentXMLDriver = d
	xmlDrivers[d.Name()] = d
	xmlDriverMu.Unlock()
}

// RegisterXMLDriver makes a driver available to DriverByName without making
// it the default.
func RegisterXMLDriver(d XMLDriver) {
	if d == nil {
		return
	}
	xmlDriverMu.Lock()
	xmlDrivers[d.Name()] = d
	xmlDriverMu.Unlock()
}

// UseDefaultXMLDriver restores the default encoding/xml-backed driver.
func UseDefaultXMLDriver() {
	xmlDriverMu.Lock()
	currentXMLDriver = defaultXMLDriver{}
	xmlDriverMu.Unlock()
}

// CurrentXMLDriver returns the driver used by XMLReader, XMLBytes and NewSink.
func CurrentXMLDriver() XMLDriver {
	xmlDriverMu.RLock()
	d := currentXMLDriver
	xmlDriverMu.RUnlock()
	return d
}

// DriverByName looks up a registered driver.
func DriverByName(name string) (XMLDriver, bool) {
	xmlDriverMu.RLock()
	d, ok := xmlDrivers[name]
	xmlDriverMu.RUnlock()
	return d, ok
}

// DriverNames lists registered driver names in sorted order.
func DriverNames() []string {
	xmlDriverMu.RLock()
	names := make([]string, 0, len(xmlDrivers))
	for n := range xmlDrivers {
		names = append(names, n)
	}
	xmlDriverMu.RUnlock()
	sort.Strings(names)
	return names
}

// defaultXMLDriver wraps the encoding/xml implementation.
type defaultXMLDriver struct{}

func (defaultXMLDriver) NewReader(r io.Reader) Source { return stdxml.NewReader(r) }
func (defaultXMLDriver) NewSink(w io.Writer, opt EncodeOpt) Sink {
	return stdxml.NewWriter(w, opt.Indent)
}
func (defaultXMLDriver) Name() string { return "encoding/xml" }

// XMLReader wraps an io.Reader as a Source using the current driver.
func XMLReader(r io.Reader) Source { return CurrentXMLDriver().NewReader(r) }

// XMLBytes wraps a byte slice as a Source using the current driver.
func XMLBytes(b []byte) Source { return CurrentXMLDriver().NewReader(bytes.NewReader(b)) }

// NewSink wraps an io.Writer as a Sink using the current driver.
func NewSink(w io.Writer, opt EncodeOpt) Sink { return CurrentXMLDriver().NewSink(w, opt) }

// EnforceSource wraps a Source with runtime enforcement (end-tag balance and
// maximum depth). Enforcement failures surface as Issues from NextToken.
func EnforceSource(s Source, opt ParseOpt) Source {
	var forward func(eng.SimpleIssue)
	if opt.IssueSink != nil {
		forward = func(si eng.SimpleIssue) {
			opt.IssueSink(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: s.Location()})
		}
	}
	enforced := eng.WrapWithEnforcement(s, eng.EnforceOptions{MaxDepth: opt.MaxDepth, IssueSink: forward})
	return &issueSource{inner: enforced}
}

// issueSource converts engine and driver errors into Issues.
type issueSource struct{ inner eng.TokenSource }

func (s *issueSource) NextToken() (Token, error) {
	tok, err := s.inner.NextToken()
	if err != nil {
		return Token{}, ToIssues(err, s.inner.Location())
	}
	return tok, nil
}

func (s *issueSource) Location() int64 { return s.inner.Location() }

// ToIssues converts an arbitrary error from a Source into Issues. Errors that
// already are Issues pass through unchanged.
func ToIssues(err error, offset int64) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		it := Issue{Path: ie.Path, Code: ie.Code, Offset: offset, Params: map[string]any{"detail": ie.Message}}
		it.Message = it.render()
		return Issues{it}
	}
	iss := ParseError(err)
	iss[0].Offset = offset
	return iss
}
