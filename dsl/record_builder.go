package dsl

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

type recordBuilder struct {
	name   string
	fields []FieldSpec
}

type fieldStep struct {
	b   *recordBuilder
	idx int
}

// Record starts a schema for the element named name. Fields are encoded in
// the order they are declared.
func Record(name string) *recordBuilder {
	return &recordBuilder{name: name}
}

// Field declares a leaf field decoded and encoded with ad.
func (b *recordBuilder) Field(name string, ad ScalarAdapter) *fieldStep {
	b.fields = append(b.fields, FieldSpec{Name: name, Scalar: ad})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Nested declares a field holding a record of schema s.
func (b *recordBuilder) Nested(name string, s *RecordSchema) *fieldStep {
	b.fields = append(b.fields, FieldSpec{Name: name, Record: s})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Code sets the faltkod the element must carry.
func (f *fieldStep) Code(code string) *fieldStep {
	f.b.fields[f.idx].Code = code
	return f
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *recordBuilder {
	f.b.fields[f.idx].Required = true
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *recordBuilder {
	f.b.fields[f.idx].Required = false
	return f.b
}

func (f *fieldStep) Field(name string, ad ScalarAdapter) *fieldStep { return f.b.Field(name, ad) }
func (f *fieldStep) Nested(name string, s *RecordSchema) *fieldStep { return f.b.Nested(name, s) }
func (f *fieldStep) Build() (*RecordSchema, error)                  { return f.b.Build() }
func (f *fieldStep) MustBuild() *RecordSchema                       { return f.b.MustBuild() }

// Build validates the declarations and returns the schema. Every problem is
// reported, not only the first.
func (b *recordBuilder) Build() (*RecordSchema, error) {
	var err error
	if b.name == "" {
		err = multierr.Append(err, errors.New("record name is empty"))
	}
	index := make(map[string]int, len(b.fields))
	for i, f := range b.fields {
		switch {
		case f.Name == "":
			err = multierr.Append(err, fmt.Errorf("%s: field %d has no name", b.name, i))
			continue
		case f.Record == nil && f.Scalar.IsZero():
			err = multierr.Append(err, fmt.Errorf("%s.%s: no codec or nested schema", b.name, f.Name))
		case f.Record != nil && f.Code != "":
			err = multierr.Append(err, fmt.Errorf("%s.%s: nested records carry no faltkod", b.name, f.Name))
		}
		if f.Code != "" && !validCode(f.Code) {
			err = multierr.Append(err, fmt.Errorf("%s.%s: faltkod %q is not three digits", b.name, f.Name, f.Code))
		}
		if _, dup := index[f.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate field %s", b.name, f.Name))
			continue
		}
		index[f.Name] = i
	}
	if err != nil {
		return nil, err
	}
	return &RecordSchema{name: b.name, fields: append([]FieldSpec(nil), b.fields...), index: index}, nil
}

// MustBuild is Build for package-level schema tables; it panics on error.
func (b *recordBuilder) MustBuild() *RecordSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func validCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
