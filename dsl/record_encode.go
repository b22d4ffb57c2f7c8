package dsl

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	ku "github.com/reoring/kontrolluppgift"
)

// Encode writes rec as an element named after the schema.
func (s *RecordSchema) Encode(ctx context.Context, sink ku.Sink, rec *RecordValue, opt ku.EncodeOpt) error {
	return s.EncodeElement(ctx, sink, s.name, rec, opt)
}

// EncodeElement writes rec as an element named name (which may be prefixed)
// with the given attributes. Fields are written in declaration order and
// absent optional fields are omitted.
func (s *RecordSchema) EncodeElement(ctx context.Context, sink ku.Sink, name string, rec *RecordValue, opt ku.EncodeOpt, attrs ...ku.Attr) error {
	return s.EncodeAt(ctx, sink, name, rec, ku.RootPath().Elem(name), opt, attrs...)
}

// EncodeAt is EncodeElement with issue paths rooted at path, the path of the
// element being written.
func (s *RecordSchema) EncodeAt(ctx context.Context, sink ku.Sink, name string, rec *RecordValue, path ku.PathRef, opt ku.EncodeOpt, attrs ...ku.Attr) error {
	if err := s.encode(ctx, sink, name, rec, path, attrs); err != nil {
		return err
	}
	opt.Log().Debug("record encoded", zap.String("record", s.name), zap.String("element", name))
	return nil
}

// EncodeBytes renders rec as a standalone fragment with the current XML
// driver.
func (s *RecordSchema) EncodeBytes(ctx context.Context, rec *RecordValue, opts ...ku.EncodeOpt) ([]byte, error) {
	opt := ku.EncodeOptOrDefault(opts...)
	var buf bytes.Buffer
	sink := ku.NewSink(&buf, opt)
	if err := s.Encode(ctx, sink, rec, opt); err != nil {
		return nil, err
	}
	if err := sink.Flush(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", s.name, err)
	}
	return buf.Bytes(), nil
}

func (s *RecordSchema) encode(ctx context.Context, sink ku.Sink, name string, rec *RecordValue, path ku.PathRef, attrs []ku.Attr) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec == nil {
		return ku.InvalidType(name, s.name, "nil").Locate(path.String(), "", -1)
	}
	if rec.schema != s {
		return schemaMismatch(name, s, rec.schema).Locate(path.String(), "", -1)
	}
	if err := sink.StartElement(name, attrs...); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	for i, f := range s.fields {
		v := rec.values[i]
		fpath := path.Elem(f.Name)
		if v == nil {
			if f.Required {
				return ku.MissingElement(f.Name, s.name).Locate(path.String(), "", -1)
			}
			continue
		}
		if f.Record != nil {
			child, _ := v.(*RecordValue)
			if err := f.Record.encode(ctx, sink, f.Name, child, fpath, nil); err != nil {
				return err
			}
			continue
		}
		text, err := f.Scalar.Encode(v)
		if err != nil {
			return ku.ToIssues(err, -1).Locate(fpath.String(), f.Name, -1)
		}
		if err := writeLeaf(sink, f, text); err != nil {
			return fmt.Errorf("encode %s: %w", fpath, err)
		}
	}
	if err := sink.EndElement(name); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func writeLeaf(sink ku.Sink, f FieldSpec, text string) error {
	var attrs []ku.Attr
	if f.Code != "" {
		attrs = []ku.Attr{{Local: "faltkod", Value: f.Code}}
	}
	if err := sink.StartElement(f.Name, attrs...); err != nil {
		return err
	}
	if text != "" {
		if err := sink.Text(text); err != nil {
			return err
		}
	}
	return sink.EndElement(f.Name)
}
