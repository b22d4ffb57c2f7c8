package dsl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	ku "github.com/reoring/kontrolluppgift"
	str "github.com/reoring/kontrolluppgift/internal/stream"
)

// Variant is the record found inside a content wrapper, tagged with the name
// of the schema that matched.
type Variant struct {
	Name   string
	Record *RecordValue
}

// IsZero reports whether no variant is set.
func (v Variant) IsZero() bool { return v.Record == nil }

// VariantSet is a closed, immutable table of record schemas selectable by
// element name.
type VariantSet struct {
	byName map[string]*RecordSchema
	names  []string
}

// NewVariantSet builds a set from schemas; names must be unique.
func NewVariantSet(schemas ...*RecordSchema) (*VariantSet, error) {
	vs := &VariantSet{byName: make(map[string]*RecordSchema, len(schemas))}
	for _, s := range schemas {
		if s == nil {
			return nil, fmt.Errorf("variant set: nil schema")
		}
		if _, dup := vs.byName[s.name]; dup {
			return nil, fmt.Errorf("variant set: duplicate variant %s", s.name)
		}
		vs.byName[s.name] = s
		vs.names = append(vs.names, s.name)
	}
	sort.Sort(natural.StringSlice(vs.names))
	return vs, nil
}

// MustVariantSet is NewVariantSet for package-level tables; it panics on error.
func MustVariantSet(schemas ...*RecordSchema) *VariantSet {
	vs, err := NewVariantSet(schemas...)
	if err != nil {
		panic(err)
	}
	return vs
}

// Lookup returns the schema registered under name.
func (vs *VariantSet) Lookup(name string) (*RecordSchema, bool) {
	s, ok := vs.byName[name]
	return s, ok
}

// Names lists the registered variants in natural order (KU9 before KU10).
func (vs *VariantSet) Names() []string { return append([]string(nil), vs.names...) }

// Len returns the number of variants.
func (vs *VariantSet) Len() int { return len(vs.names) }

// NewVariant tags rec with its schema name after checking that the schema is
// registered.
func (vs *VariantSet) NewVariant(rec *RecordValue) (Variant, error) {
	if rec == nil {
		return Variant{}, ku.InvalidType("", "one of "+strings.Join(vs.names, ", "), "nil")
	}
	if s, ok := vs.byName[rec.schema.name]; !ok || s != rec.schema {
		return Variant{}, ku.UnexpectedElement(rec.schema.name, "variant set")
	}
	return Variant{Name: rec.schema.name, Record: rec}, nil
}

// Decode reads the content of wrapper, whose start tag the caller has already
// consumed, and decodes the first child element with the matching schema.
// reading names the block that contains the wrapper; it is reported when the
// wrapper closes without any variant. Content after the variant is skipped up
// to the wrapper's end tag.
func (vs *VariantSet) Decode(ctx context.Context, src ku.Source, wrapper ku.Token, reading string, opt ku.ParseOpt) (Variant, error) {
	return vs.DecodeAt(ctx, src, wrapper, reading, ku.RootPath().Elem(wrapper.Name), opt)
}

// DecodeAt is Decode with issue paths rooted at path, the wrapper's path.
func (vs *VariantSet) DecodeAt(ctx context.Context, src ku.Source, wrapper ku.Token, reading string, path ku.PathRef, opt ku.ParseOpt) (Variant, error) {
	es := str.NewElementSource(src)
	for {
		tok, err := es.NextToken()
		if err != nil {
			return Variant{}, ku.ToIssues(err, src.Location()).Locate(path.String(), "", src.Location())
		}
		switch tok.Kind {
		case ku.TokenEOF:
			return Variant{}, ku.UnexpectedEOF(wrapper.Name).Locate(path.String(), "", tok.Offset)
		case ku.TokenEnd:
			return Variant{}, ku.MissingElement(wrapper.Name, reading).Locate(path.String(), "", tok.Offset)
		case ku.TokenText:
			if tok.IsBlank() {
				continue
			}
			return Variant{}, ku.UnexpectedToken("", "element", strings.TrimSpace(tok.Text)).Locate(path.String(), wrapper.Name, tok.Offset)
		case ku.TokenStart:
			s, ok := vs.byName[tok.Name]
			if !ok {
				return Variant{}, ku.UnexpectedElement(tok.Name, wrapper.Name).Locate(path.Elem(tok.Name).String(), "", tok.Offset)
			}
			rec, iss := s.decode(ctx, es, tok, path.Elem(tok.Name), opt)
			if iss != nil {
				return Variant{}, iss
			}
			closed, err := es.Drain()
			if err != nil {
				return Variant{}, ku.ToIssues(err, src.Location()).Locate(path.String(), "", src.Location())
			}
			if !closed {
				return Variant{}, ku.UnexpectedEOF(wrapper.Name).Locate(path.String(), "", src.Location())
			}
			opt.Log().Debug("variant decoded", zap.String("variant", tok.Name), zap.String("path", path.String()))
			return Variant{Name: tok.Name, Record: rec}, nil
		}
	}
}

// Encode writes v wrapped in an element named wrapper.
func (vs *VariantSet) Encode(ctx context.Context, sink ku.Sink, wrapper string, v Variant, opt ku.EncodeOpt) error {
	return vs.EncodeAt(ctx, sink, wrapper, v, ku.RootPath().Elem(wrapper), opt)
}

// EncodeAt is Encode with issue paths rooted at path, the wrapper's path.
func (vs *VariantSet) EncodeAt(ctx context.Context, sink ku.Sink, wrapper string, v Variant, path ku.PathRef, opt ku.EncodeOpt) error {
	if v.Record == nil {
		return ku.MissingElement(wrapper, "variant").Locate(path.String(), "", -1)
	}
	name := v.Name
	if name == "" {
		name = v.Record.schema.name
	}
	s, ok := vs.byName[name]
	if !ok {
		return ku.UnexpectedElement(name, wrapper).Locate(path.Elem(name).String(), "", -1)
	}
	if err := sink.StartElement(wrapper); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := s.EncodeAt(ctx, sink, name, v.Record, path.Elem(name), opt); err != nil {
		return err
	}
	if err := sink.EndElement(wrapper); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
