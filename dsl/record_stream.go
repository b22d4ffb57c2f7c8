package dsl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	ku "github.com/reoring/kontrolluppgift"
	eng "github.com/reoring/kontrolluppgift/internal/engine"
)

// Decode reads the content of the element opened by start, which the caller
// has already consumed from src, up to and including its end tag. Issue paths
// are rooted at the element itself.
func (s *RecordSchema) Decode(ctx context.Context, src ku.Source, start ku.Token, opt ku.ParseOpt) (*RecordValue, error) {
	return s.DecodeAt(ctx, src, start, ku.RootPath().Elem(start.Name), opt)
}

// DecodeAt is Decode with issue paths rooted at path, the path of start
// within the enclosing document.
func (s *RecordSchema) DecodeAt(ctx context.Context, src ku.Source, start ku.Token, path ku.PathRef, opt ku.ParseOpt) (*RecordValue, error) {
	rv, iss := s.decode(ctx, src, start, path, opt)
	if iss != nil {
		return nil, iss
	}
	return rv, nil
}

// DecodeFrom reads the record's own start tag from src and decodes the
// element. Leading whitespace is skipped; any other element fails with
// unexpected_element.
func (s *RecordSchema) DecodeFrom(ctx context.Context, src ku.Source, opt ku.ParseOpt) (*RecordValue, error) {
	start, iss := nextStart(src, s.name)
	if iss != nil {
		return nil, iss
	}
	if start.Name != s.name {
		return nil, ku.UnexpectedElement(start.Name, s.name).Locate(ku.RootPath().Elem(start.Name).String(), "", start.Offset)
	}
	return s.Decode(ctx, src, start, opt)
}

// DecodeBytes decodes a standalone XML fragment whose root element is this
// record, using the current XML driver.
func (s *RecordSchema) DecodeBytes(ctx context.Context, data []byte, opts ...ku.ParseOpt) (*RecordValue, error) {
	opt := ku.ParseOptOrDefault(opts...)
	src := ku.EnforceSource(ku.XMLBytes(data), opt)
	rv, err := s.DecodeFrom(ctx, src, opt)
	if err != nil {
		return nil, err
	}
	if iss := expectEnd(src, s.name); iss != nil {
		return nil, iss
	}
	return rv, nil
}

func (s *RecordSchema) decode(ctx context.Context, src ku.Source, start ku.Token, path ku.PathRef, opt ku.ParseOpt) (*RecordValue, ku.Issues) {
	if err := ctx.Err(); err != nil {
		iss := ku.ParseError(err).Locate(path.String(), start.Name, start.Offset)
		return nil, iss
	}
	values := make([]any, len(s.fields))
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, ku.ToIssues(err, src.Location()).Locate(path.String(), "", src.Location())
		}
		switch tok.Kind {
		case ku.TokenEOF:
			return nil, ku.UnexpectedEOF(s.name).Locate(path.String(), "", tok.Offset)
		case ku.TokenText:
			if tok.IsBlank() {
				continue
			}
			return nil, ku.UnexpectedToken("", "element", strings.TrimSpace(tok.Text)).Locate(path.String(), s.name, tok.Offset)
		case ku.TokenEnd:
			if tok.Name != start.Name {
				err := fmt.Errorf("expected </%s> found </%s>", start.Name, tok.Name)
				return nil, ku.ParseError(err).Locate(path.String(), "", tok.Offset)
			}
			if iss := missingRequired(s, values); iss != nil {
				return nil, iss.Locate(path.String(), "", tok.Offset)
			}
			opt.Log().Debug("record decoded", zap.String("record", s.name), zap.String("path", path.String()))
			return &RecordValue{schema: s, values: values}, nil
		case ku.TokenStart:
			i, ok := s.index[tok.Name]
			if !ok {
				return nil, ku.UnexpectedElement(tok.Name, s.name).Locate(path.Elem(tok.Name).String(), "", tok.Offset)
			}
			f := s.fields[i]
			fpath := path.Elem(f.Name)
			if values[i] != nil {
				if iss := s.duplicate(f, fpath, tok, opt); iss != nil {
					return nil, iss
				}
			}
			v, iss := s.decodeField(ctx, src, f, tok, fpath, opt)
			if iss != nil {
				return nil, iss
			}
			values[i] = v
		}
	}
}

// duplicate applies the duplicate field policy. The later occurrence wins
// unless the policy is Error.
func (s *RecordSchema) duplicate(f FieldSpec, path ku.PathRef, tok ku.Token, opt ku.ParseOpt) ku.Issues {
	iss := ku.DuplicateElement(f.Name, s.name).Locate(path.String(), "", tok.Offset)
	switch opt.Strictness.OnDuplicateField {
	case ku.Error:
		return iss
	case ku.Warn:
		opt.Log().Warn("duplicate field, keeping the last occurrence",
			zap.String("record", s.name),
			zap.String("field", f.Name),
			zap.String("path", path.String()),
			zap.Int64("offset", tok.Offset))
		if opt.IssueSink != nil {
			opt.IssueSink(iss[0])
		}
	}
	return nil
}

func (s *RecordSchema) decodeField(ctx context.Context, src ku.Source, f FieldSpec, tok ku.Token, path ku.PathRef, opt ku.ParseOpt) (any, ku.Issues) {
	if f.Record != nil {
		rv, iss := f.Record.decode(ctx, src, tok, path, opt)
		if iss != nil {
			return nil, iss
		}
		return rv, nil
	}
	if f.Code != "" {
		kod, ok := tok.Attr("faltkod")
		if !ok {
			return nil, ku.MissingElement("faltkod", f.Name).Locate(path.String(), f.Name, tok.Offset)
		}
		if kod != f.Code {
			return nil, ku.UnexpectedFaltkod(f.Name, f.Code, kod).Locate(path.String(), "", tok.Offset)
		}
	}
	text, end, err := eng.ReadText(src, tok)
	switch {
	case errors.Is(err, eng.ErrNestedElement):
		return nil, ku.UnexpectedElement(end.Name, f.Name).Locate(path.Elem(end.Name).String(), "", end.Offset)
	case errors.Is(err, eng.ErrEOF):
		return nil, ku.UnexpectedEOF(s.name).Locate(path.String(), f.Name, end.Offset)
	case err != nil:
		return nil, ku.ToIssues(err, src.Location()).Locate(path.String(), f.Name, src.Location())
	}
	v, err := f.Scalar.Decode(text)
	if err != nil {
		return nil, ku.ToIssues(err, tok.Offset).Locate(path.String(), f.Name, tok.Offset)
	}
	return v, nil
}

// nextStart skips whitespace up to the next start tag.
func nextStart(src ku.Source, reading string) (ku.Token, ku.Issues) {
	for {
		tok, err := src.NextToken()
		if err != nil {
			return ku.Token{}, ku.ToIssues(err, src.Location())
		}
		switch tok.Kind {
		case ku.TokenStart:
			return tok, nil
		case ku.TokenText:
			if !tok.IsBlank() {
				return ku.Token{}, ku.UnexpectedToken("", "element", strings.TrimSpace(tok.Text)).Locate("/", reading, tok.Offset)
			}
		case ku.TokenEOF:
			return ku.Token{}, ku.UnexpectedEOF(reading).Locate("/", "", tok.Offset)
		case ku.TokenEnd:
			err := fmt.Errorf("unexpected end tag </%s>", tok.Name)
			return ku.Token{}, ku.ParseError(err).Locate("/", "", tok.Offset)
		}
	}
}

// expectEnd checks that only whitespace follows the root element.
func expectEnd(src ku.Source, reading string) ku.Issues {
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
				return ku.UnexpectedToken("", "end of input", strings.TrimSpace(tok.Text)).Locate("/", reading, tok.Offset)
			}
		default:
			return ku.UnexpectedElement(tok.Name, reading).Locate("/"+tok.Name, "", tok.Offset)
		}
	}
}
