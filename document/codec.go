package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	ku "github.com/reoring/kontrolluppgift"
	"github.com/reoring/kontrolluppgift/dsl"
	"github.com/reoring/kontrolluppgift/forms"
)

// Codec decodes and encodes whole documents. Variants lists the forms
// accepted inside Blankettinnehall.
type Codec struct {
	Variants *dsl.VariantSet
}

// NewCodec returns a codec dispatching form content over vs.
func NewCodec(vs *dsl.VariantSet) *Codec { return &Codec{Variants: vs} }

var defaultCodec = NewCodec(forms.Variants())

// DefaultCodec returns the codec over the built-in forms.
func DefaultCodec() *Codec { return defaultCodec }

// Decode parses a complete document using the built-in forms.
func Decode(ctx context.Context, data []byte, opts ...ku.ParseOpt) (*Document, error) {
	return defaultCodec.Decode(ctx, data, opts...)
}

// Encode renders a document using the built-in forms.
func Encode(ctx context.Context, doc *Document, opts ...ku.EncodeOpt) ([]byte, error) {
	return defaultCodec.Encode(ctx, doc, opts...)
}

// Decode parses data. No partial document is returned on error.
func (c *Codec) Decode(ctx context.Context, data []byte, opts ...ku.ParseOpt) (*Document, error) {
	return c.DecodeReader(ctx, bytes.NewReader(data), opts...)
}

// DecodeReader parses a document from r with the current XML driver.
func (c *Codec) DecodeReader(ctx context.Context, r io.Reader, opts ...ku.ParseOpt) (*Document, error) {
	opt := ku.ParseOptOrDefault(opts...)
	return c.DecodeSource(ctx, ku.EnforceSource(ku.XMLReader(r), opt), opt)
}

// DecodeSource parses a document from an already constructed source. The
// source must be positioned before the root element.
func (c *Codec) DecodeSource(ctx context.Context, src ku.Source, opt ku.ParseOpt) (*Document, error) {
	root, iss := firstStart(src)
	if iss != nil {
		return nil, iss
	}
	path := ku.RootPath().Elem(RootName)
	if root.Name != RootName {
		return nil, ku.UnexpectedElement(root.Name, "document").Locate("/"+root.Name, "", root.Offset)
	}
	doc, iss := c.decodeRoot(ctx, src, root, path, opt)
	if iss != nil {
		return nil, iss
	}
	if iss := trailing(src); iss != nil {
		return nil, iss
	}
	opt.Log().Debug("document decoded", zap.Int("entries", len(doc.Entries)))
	return doc, nil
}

func (c *Codec) decodeRoot(ctx context.Context, src ku.Source, root ku.Token, path ku.PathRef, opt ku.ParseOpt) (*Document, ku.Issues) {
	doc := &Document{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, ku.ToIssues(err, src.Location()).Locate(path.String(), "", src.Location())
		}
		switch tok.Kind {
		case ku.TokenEOF:
			return nil, ku.UnexpectedEOF(RootName).Locate(path.String(), "", tok.Offset)
		case ku.TokenText:
			if !tok.IsBlank() {
				return nil, ku.UnexpectedToken("", "element", strings.TrimSpace(tok.Text)).Locate(path.String(), RootName, tok.Offset)
			}
		case ku.TokenEnd:
			if doc.Sender == nil {
				return nil, ku.MissingElement(ElemSender, RootName).Locate(path.String(), "", tok.Offset)
			}
			if doc.Shared == nil {
				return nil, ku.MissingElement(ElemShared, RootName).Locate(path.String(), "", tok.Offset)
			}
			return doc, nil
		case ku.TokenStart:
			switch tok.Name {
			case ElemSender:
				if iss := duplicate(doc.Sender != nil, tok, RootName, path.Elem(tok.Name), opt); iss != nil {
					return nil, iss
				}
				rv, err := Avsandare.DecodeAt(ctx, src, tok, path.Elem(tok.Name), opt)
				if err != nil {
					return nil, asIssues(err)
				}
				doc.Sender = rv
			case ElemShared:
				if iss := duplicate(doc.Shared != nil, tok, RootName, path.Elem(tok.Name), opt); iss != nil {
					return nil, iss
				}
				rv, err := Blankettgemensamt.DecodeAt(ctx, src, tok, path.Elem(tok.Name), opt)
				if err != nil {
					return nil, asIssues(err)
				}
				doc.Shared = rv
			case ElemEntry:
				e, iss := c.decodeEntry(ctx, src, tok, path.Elem(ElemEntry).Index(len(doc.Entries)), opt)
				if iss != nil {
					return nil, iss
				}
				doc.Entries = append(doc.Entries, e)
			default:
				return nil, ku.UnexpectedElement(tok.Name, RootName).Locate(path.Elem(tok.Name).String(), "", tok.Offset)
			}
		}
	}
}

func (c *Codec) decodeEntry(ctx context.Context, src ku.Source, start ku.Token, path ku.PathRef, opt ku.ParseOpt) (Entry, ku.Issues) {
	var e Entry
	raw, ok := start.Attr(AttrNumber)
	if !ok {
		return e, ku.MissingElement(AttrNumber, ElemEntry).Locate(path.String(), "", start.Offset)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return e, ku.UnexpectedToken("attribute", "integer", raw).Locate(path.String(), AttrNumber, start.Offset)
	}
	e.Number = n
	for {
		tok, err := src.NextToken()
		if err != nil {
			return e, ku.ToIssues(err, src.Location()).Locate(path.String(), "", src.Location())
		}
		switch tok.Kind {
		case ku.TokenEOF:
			return e, ku.UnexpectedEOF(ElemEntry).Locate(path.String(), "", tok.Offset)
		case ku.TokenText:
			if !tok.IsBlank() {
				return e, ku.UnexpectedToken("", "element", strings.TrimSpace(tok.Text)).Locate(path.String(), ElemEntry, tok.Offset)
			}
		case ku.TokenEnd:
			if e.CaseInfo == nil {
				return e, ku.MissingElement(ElemCaseInfo, ElemEntry).Locate(path.String(), "", tok.Offset)
			}
			if e.Content.IsZero() {
				return e, ku.MissingElement(ElemContent, ElemEntry).Locate(path.String(), "", tok.Offset)
			}
			opt.Log().Debug("entry decoded",
				zap.Int64("nummer", e.Number),
				zap.String("variant", e.Content.Name),
				zap.String("path", path.String()))
			return e, nil
		case ku.TokenStart:
			switch tok.Name {
			case ElemCaseInfo:
				if iss := duplicate(e.CaseInfo != nil, tok, ElemEntry, path.Elem(tok.Name), opt); iss != nil {
					return e, iss
				}
				rv, err := Arendeinformation.DecodeAt(ctx, src, tok, path.Elem(tok.Name), opt)
				if err != nil {
					return e, asIssues(err)
				}
				e.CaseInfo = rv
			case ElemContent:
				if iss := duplicate(!e.Content.IsZero(), tok, ElemEntry, path.Elem(tok.Name), opt); iss != nil {
					return e, iss
				}
				v, err := c.Variants.DecodeAt(ctx, src, tok, ElemEntry, path.Elem(tok.Name), opt)
				if err != nil {
					return e, asIssues(err)
				}
				e.Content = v
			default:
				return e, ku.UnexpectedElement(tok.Name, ElemEntry).Locate(path.Elem(tok.Name).String(), "", tok.Offset)
			}
		}
	}
}

// duplicate applies the duplicate field policy to envelope blocks.
func duplicate(seen bool, tok ku.Token, reading string, path ku.PathRef, opt ku.ParseOpt) ku.Issues {
	if !seen {
		return nil
	}
	iss := ku.DuplicateElement(tok.Name, reading).Locate(path.String(), "", tok.Offset)
	switch opt.Strictness.OnDuplicateField {
	case ku.Error:
		return iss
	case ku.Warn:
		opt.Log().Warn("duplicate block, keeping the last occurrence",
			zap.String("element", tok.Name),
			zap.String("path", path.String()))
		if opt.IssueSink != nil {
			opt.IssueSink(iss[0])
		}
	}
	return nil
}

func asIssues(err error) ku.Issues {
	if iss, ok := ku.AsIssues(err); ok {
		return iss
	}
	return ku.ToIssues(err, -1)
}

// firstStart skips the prolog up to the root element.
func firstStart(src ku.Source) (ku.Token, ku.Issues) {
	for {
		tok, err := src.NextToken()
		if err != nil {
			return ku.Token{}, ku.ToIssues(err, src.Location())
		}
		switch tok.Kind {
		case ku.TokenStart:
			return tok, nil
		case ku.TokenEOF:
			return ku.Token{}, ku.UnexpectedEOF(RootName).Locate("/", "", tok.Offset)
		case ku.TokenText:
			if !tok.IsBlank() {
				return ku.Token{}, ku.UnexpectedToken("", "element", strings.TrimSpace(tok.Text)).Locate("/", RootName, tok.Offset)
			}
		case ku.TokenEnd:
			return ku.Token{}, ku.ParseError(fmt.Errorf("unexpected end tag </%s>", tok.Name)).Locate("/", "", tok.Offset)
		}
	}
}

// trailing checks that only whitespace follows the root element.
func trailing(src ku.Source) ku.Issues {
	for {
		tok, err := src.NextToken()
		if err != nil {
			return ku.ToIssues(err, src.Location())
		}
		switch tok.Kind {
		case ku.TokenEOF:
			return nil
		case ku.TokenText:
			if !tok.IsBlank() {
				return ku.UnexpectedToken("", "end of input", strings.TrimSpace(tok.Text)).Locate("/", RootName, tok.Offset)
			}
		default:
			return ku.UnexpectedElement(tok.Name, "document").Locate("/"+tok.Name, "", tok.Offset)
		}
	}
}

// Encode renders doc with the current XML driver. The output is
// deterministic for a given document.
func (c *Codec) Encode(ctx context.Context, doc *Document, opts ...ku.EncodeOpt) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.EncodeTo(ctx, &buf, doc, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes doc to w. Nothing useful is left in w on error.
func (c *Codec) EncodeTo(ctx context.Context, w io.Writer, doc *Document, opts ...ku.EncodeOpt) error {
	opt := ku.EncodeOptOrDefault(opts...)
	sink := ku.NewSink(w, opt)
	if err := c.EncodeSink(ctx, sink, doc, opt); err != nil {
		return err
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// rootAttrs are the namespace and schema location attributes of the root.
var rootAttrs = []ku.Attr{
	{Space: "xmlns", Local: "i", Value: InstanceNS},
	{Local: "xmlns", Value: ComponentNS},
	{Space: "xmlns", Local: "xsi", Value: XSINS},
	{Local: "omrade", Value: Omrade},
	{Space: "xsi", Local: "schemaLocation", Value: SchemaLocation},
}

// EncodeSink writes doc, including the XML declaration, to sink without
// flushing it.
func (c *Codec) EncodeSink(ctx context.Context, sink ku.Sink, doc *Document, opt ku.EncodeOpt) error {
	if doc == nil {
		return ku.InvalidType(RootName, "document", "nil")
	}
	if err := doc.Validate(c.Variants); err != nil {
		return err
	}
	path := ku.RootPath().Elem(RootName)
	if err := sink.ProcInst("xml", xmlDecl); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := sink.StartElement(RootQName, rootAttrs...); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := Avsandare.EncodeAt(ctx, sink, ElemSender, doc.Sender, path.Elem(ElemSender), opt); err != nil {
		return err
	}
	if err := Blankettgemensamt.EncodeAt(ctx, sink, ElemShared, doc.Shared, path.Elem(ElemShared), opt); err != nil {
		return err
	}
	for i, e := range doc.Entries {
		if err := c.encodeEntry(ctx, sink, e, path.Elem(ElemEntry).Index(i), opt); err != nil {
			return err
		}
	}
	if err := sink.EndElement(RootQName); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	opt.Log().Debug("document encoded", zap.Int("entries", len(doc.Entries)))
	return nil
}

func (c *Codec) encodeEntry(ctx context.Context, sink ku.Sink, e Entry, path ku.PathRef, opt ku.EncodeOpt) error {
	if err := sink.StartElement(ElemEntry, ku.Attr{Local: AttrNumber, Value: strconv.FormatInt(e.Number, 10)}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := Arendeinformation.EncodeAt(ctx, sink, ElemCaseInfo, e.CaseInfo, path.Elem(ElemCaseInfo), opt); err != nil {
		return err
	}
	if err := c.Variants.EncodeAt(ctx, sink, ElemContent, e.Content, path.Elem(ElemContent), opt); err != nil {
		return err
	}
	if err := sink.EndElement(ElemEntry); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
