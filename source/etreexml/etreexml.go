// Package etreexml implements the token SPI over a beevik/etree document.
// The whole input is parsed into a DOM first and then replayed as tokens;
// output is assembled as a DOM and serialized on Flush.
package etreexml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	ku "github.com/reoring/kontrolluppgift"
	eng "github.com/reoring/kontrolluppgift/internal/engine"
)

type frame struct {
	el       *etree.Element
	children []etree.Token
	next     int
}

// Reader replays an etree document as engine tokens.
type Reader struct {
	err   error
	stack []frame
	count int64
	// open holds the elements left unclosed by truncated input; reaching
	// the end of one yields KindEOF instead of an end tag.
	open map[*etree.Element]bool
}

// NewReader parses r into a DOM. Parse errors are reported by the first call
// to NextToken. Input that ends inside an element is replayed up to the cut
// and then reports KindEOF, as a streaming reader would.
func NewReader(r io.Reader) *Reader {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Reader{err: fmt.Errorf("etree: %w", err)}
	}
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		depth, cut := truncatedAt(data)
		if !cut {
			return &Reader{err: parseError(err)}
		}
		rd := FromDocument(doc)
		rd.open = openChain(&doc.Element, depth)
		return rd
	}
	return FromDocument(doc)
}

func parseError(err error) error {
	if errors.Is(err, etree.ErrXML) {
		// already prefixed
		return err
	}
	return fmt.Errorf("etree: %w", err)
}

// truncatedAt scans data and reports whether it is well formed up to a cut
// inside an element, and how many elements are open at that point.
func truncatedAt(data []byte) (int, bool) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	var (
		open []xml.Name
		root bool
	)
	for {
		t, err := dec.RawToken()
		if err == io.EOF {
			return len(open), len(open) > 0
		}
		if err != nil {
			var se *xml.SyntaxError
			return len(open), errors.As(err, &se) && se.Msg == "unexpected EOF"
		}
		switch t := t.(type) {
		case xml.StartElement:
			if len(open) == 0 {
				if root {
					return 0, false
				}
				root = true
			}
			open = append(open, t.Name)
		case xml.EndElement:
			if n := len(open); n == 0 || open[n-1] != t.Name {
				return 0, false
			}
			open = open[:len(open)-1]
		}
	}
}

// openChain marks the first depth elements along the last-child path of
// root. A cut leaves exactly those open.
func openChain(root *etree.Element, depth int) map[*etree.Element]bool {
	open := make(map[*etree.Element]bool, depth)
	el := root
	for i := 0; i < depth; i++ {
		children := el.ChildElements()
		if len(children) == 0 {
			break
		}
		el = children[len(children)-1]
		open[el] = true
	}
	return open
}

// FromDocument replays an already parsed document.
func FromDocument(doc *etree.Document) *Reader {
	return &Reader{stack: []frame{{children: doc.Child}}}
}

func (r *Reader) NextToken() (eng.Token, error) {
	if r.err != nil {
		err := r.err
		r.err = nil
		return eng.Token{}, err
	}
	for len(r.stack) > 0 {
		top := &r.stack[len(r.stack)-1]
		if top.next >= len(top.children) {
			r.stack = r.stack[:len(r.stack)-1]
			if r.open[top.el] {
				r.stack = nil
				break
			}
			if top.el != nil {
				r.count++
				return eng.Token{Kind: eng.KindEnd, Space: top.el.Space, Name: top.el.Tag, Offset: -1}, nil
			}
			continue
		}
		child := top.children[top.next]
		top.next++
		switch v := child.(type) {
		case *etree.Element:
			tok := eng.Token{Kind: eng.KindStart, Space: v.Space, Name: v.Tag, Offset: -1}
			if len(v.Attr) > 0 {
				tok.Attrs = make([]eng.Attr, len(v.Attr))
				for i, a := range v.Attr {
					tok.Attrs[i] = eng.Attr{Space: a.Space, Local: a.Key, Value: a.Value}
				}
			}
			r.stack = append(r.stack, frame{el: v, children: v.Child})
			r.count++
			return tok, nil
		case *etree.CharData:
			if top.el == nil {
				// whitespace around the root element
				continue
			}
			r.count++
			return eng.Token{Kind: eng.KindText, Text: v.Data, Offset: -1}, nil
		}
	}
	return eng.Token{Kind: eng.KindEOF, Offset: -1}, nil
}

// Location reports the number of tokens produced; byte offsets are not
// available once the input has been parsed into a DOM.
func (r *Reader) Location() int64 { return r.count }

// Writer builds an etree document from the token stream.
type Writer struct {
	w      io.Writer
	indent string
	doc    *etree.Document
	stack  []*etree.Element
}

// NewWriter returns a sink that serializes to w on Flush.
func NewWriter(w io.Writer, indent string) *Writer {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	return &Writer{w: w, indent: indent, doc: doc}
}

// Document exposes the document built so far.
func (w *Writer) Document() *etree.Document { return w.doc }

func (w *Writer) ProcInst(target, inst string) error {
	w.doc.CreateProcInst(target, inst)
	return nil
}

func (w *Writer) StartElement(name string, attrs ...eng.Attr) error {
	var el *etree.Element
	if n := len(w.stack); n > 0 {
		el = w.stack[n-1].CreateElement(name)
	} else {
		if w.doc.Root() != nil {
			return fmt.Errorf("etree: second root element <%s>", name)
		}
		el = w.doc.CreateElement(name)
	}
	for _, a := range attrs {
		el.CreateAttr(a.QName(), a.Value)
	}
	w.stack = append(w.stack, el)
	return nil
}

func (w *Writer) Text(s string) error {
	n := len(w.stack)
	if n == 0 {
		return fmt.Errorf("etree: text outside the root element")
	}
	el := w.stack[n-1]
	el.SetText(el.Text() + s)
	return nil
}

func (w *Writer) EndElement(name string) error {
	n := len(w.stack)
	if n == 0 {
		return fmt.Errorf("etree: end tag </%s> without start tag", name)
	}
	if top := w.stack[n-1].FullTag(); top != name {
		return fmt.Errorf("etree: end tag </%s> does not match <%s>", name, top)
	}
	w.stack = w.stack[:n-1]
	return nil
}

// Flush indents and serializes the document.
func (w *Writer) Flush() error {
	if n := len(w.stack); n > 0 {
		return fmt.Errorf("etree: unclosed tag <%s>", w.stack[n-1].FullTag())
	}
	switch {
	case w.indent == "\t":
		w.doc.IndentTabs()
	case w.indent != "":
		w.doc.Indent(len(w.indent))
	default:
		w.doc.Indent(etree.NoIndent)
	}
	_, err := w.doc.WriteTo(w.w)
	return err
}

// Driver returns a kontrolluppgift.XMLDriver backed by beevik/etree.
func Driver() ku.XMLDriver { return driverEtree{} }

type driverEtree struct{}

func (driverEtree) NewReader(r io.Reader) ku.Source { return NewReader(r) }
func (driverEtree) NewSink(w io.Writer, opt ku.EncodeOpt) ku.Sink {
	return NewWriter(w, opt.Indent)
}
func (driverEtree) Name() string { return "etree" }

func init() { ku.RegisterXMLDriver(Driver()) }
