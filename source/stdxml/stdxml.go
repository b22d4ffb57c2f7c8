// Package stdxml implements the token SPI over encoding/xml. It is the
// default driver of the codec.
package stdxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	eng "github.com/reoring/kontrolluppgift/internal/engine"
)

// Reader is an engine.TokenSource backed by xml.Decoder. It uses RawToken so
// prefixes are kept as written and element balance is left to the engine;
// input that ends inside an element yields KindEOF instead of a syntax error.
type Reader struct {
	dec  *xml.Decoder
	done bool
}

// NewReader returns a streaming token source over r. Non UTF-8 documents are
// transcoded according to their XML declaration.
func NewReader(r io.Reader) *Reader {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	return &Reader{dec: dec}
}

func (r *Reader) NextToken() (eng.Token, error) {
	for !r.done {
		off := r.dec.InputOffset()
		t, err := r.dec.RawToken()
		if errors.Is(err, io.EOF) {
			r.done = true
			break
		}
		if err != nil {
			return eng.Token{}, fmt.Errorf("xml: %w", err)
		}
		switch v := t.(type) {
		case xml.StartElement:
			tok := eng.Token{Kind: eng.KindStart, Space: v.Name.Space, Name: v.Name.Local, Offset: off}
			if len(v.Attr) > 0 {
				tok.Attrs = make([]eng.Attr, len(v.Attr))
				for i, a := range v.Attr {
					tok.Attrs[i] = eng.Attr{Space: a.Name.Space, Local: a.Name.Local, Value: a.Value}
				}
			}
			return tok, nil
		case xml.EndElement:
			return eng.Token{Kind: eng.KindEnd, Space: v.Name.Space, Name: v.Name.Local, Offset: off}, nil
		case xml.CharData:
			return eng.Token{Kind: eng.KindText, Text: string(v), Offset: off}, nil
		}
		// comments, processing instructions and directives carry no data
	}
	return eng.Token{Kind: eng.KindEOF, Offset: r.dec.InputOffset()}, nil
}

func (r *Reader) Location() int64 { return r.dec.InputOffset() }

// Writer is an engine.TokenSink backed by xml.Encoder.
type Writer struct {
	enc      *xml.Encoder
	indented bool
}

// NewWriter returns a sink writing to w. A non-empty indent pretty-prints
// element content; leaf text is never padded.
func NewWriter(w io.Writer, indent string) *Writer {
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}
	return &Writer{enc: enc, indented: indent != ""}
}

func (w *Writer) ProcInst(target, inst string) error {
	if err := w.enc.EncodeToken(xml.ProcInst{Target: target, Inst: []byte(inst)}); err != nil {
		return err
	}
	if w.indented {
		// the encoder does not indent after a processing instruction
		return w.enc.EncodeToken(xml.CharData("\n"))
	}
	return nil
}

func (w *Writer) StartElement(name string, attrs ...eng.Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if len(attrs) > 0 {
		start.Attr = make([]xml.Attr, len(attrs))
		for i, a := range attrs {
			// prefixes are written verbatim; the envelope declares them itself
			start.Attr[i] = xml.Attr{Name: xml.Name{Local: a.QName()}, Value: a.Value}
		}
	}
	return w.enc.EncodeToken(start)
}

func (w *Writer) Text(s string) error { return w.enc.EncodeToken(xml.CharData(s)) }

func (w *Writer) EndElement(name string) error {
	return w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// Flush writes buffered output and reports unclosed elements.
func (w *Writer) Flush() error {
	if err := w.enc.Flush(); err != nil {
		return err
	}
	return w.enc.Close()
}
