package dsl

import (
	"fmt"

	ku "github.com/reoring/kontrolluppgift"
)

// RecordValue holds the decoded fields of one record. It is immutable: decode
// and RecordBuilder.Build are the only ways to obtain one.
type RecordValue struct {
	schema *RecordSchema
	// values is parallel to schema.fields; nil marks an absent field. Nested
	// fields hold *RecordValue.
	values []any
}

// Schema returns the schema the record was built against.
func (r *RecordValue) Schema() *RecordSchema { return r.schema }

// Name returns the record's element name.
func (r *RecordValue) Name() string { return r.schema.name }

// Get returns the value of field name and whether it is present.
func (r *RecordValue) Get(name string) (any, bool) {
	i, ok := r.schema.index[name]
	if !ok || r.values[i] == nil {
		return nil, false
	}
	return r.values[i], true
}

// Nested returns the nested record stored in field name.
func (r *RecordValue) Nested(name string) (*RecordValue, bool) {
	v, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	rv, ok := v.(*RecordValue)
	return rv, ok
}

// Has reports whether field name is present.
func (r *RecordValue) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Len returns the number of present fields.
func (r *RecordValue) Len() int {
	n := 0
	for _, v := range r.values {
		if v != nil {
			n++
		}
	}
	return n
}

// Range calls fn for each present field in declaration order until fn
// returns false.
func (r *RecordValue) Range(fn func(f FieldSpec, v any) bool) {
	for i, v := range r.values {
		if v == nil {
			continue
		}
		if !fn(r.schema.fields[i], v) {
			return
		}
	}
}

// Equal reports structural equality: same record type, same present fields,
// leaf values equal in wire form and nested records equal recursively.
func (r *RecordValue) Equal(o *RecordValue) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.schema != o.schema {
		return false
	}
	if len(r.values) != len(o.values) {
		return false
	}
	for i, f := range r.schema.fields {
		a, b := r.values[i], o.values[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a == nil {
			continue
		}
		if f.Record != nil {
			ra, _ := a.(*RecordValue)
			rb, _ := b.(*RecordValue)
			if !ra.Equal(rb) {
				return false
			}
			continue
		}
		if !f.Scalar.Equal(a, b) {
			return false
		}
	}
	return true
}

// AsMap renders the record as a map keyed by wire name; nested records become
// nested maps. Validated scalars are unwrapped to their underlying value.
func (r *RecordValue) AsMap() map[string]any {
	out := make(map[string]any, len(r.values))
	r.Range(func(f FieldSpec, v any) bool {
		switch tv := v.(type) {
		case *RecordValue:
			out[f.Name] = tv.AsMap()
		case interface{ Unwrap() any }:
			out[f.Name] = tv.Unwrap()
		default:
			out[f.Name] = v
		}
		return true
	})
	return out
}

// Get returns field name of r as T. Validated scalars are unwrapped when T is
// their underlying type.
func Get[T any](r *RecordValue, name string) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}
	v, ok := r.Get(name)
	if !ok {
		return zero, false
	}
	if tv, ok := v.(T); ok {
		return tv, true
	}
	if u, ok := v.(interface{ Unwrap() any }); ok {
		if tv, ok := u.Unwrap().(T); ok {
			return tv, true
		}
	}
	return zero, false
}

// RecordBuilder assembles a RecordValue in code. Values are checked against
// the field's codec as they are set; Build enforces required fields.
type RecordBuilder struct {
	schema *RecordSchema
	values []any
	err    ku.Issues
}

// NewRecord starts a value of schema s.
func NewRecord(s *RecordSchema) *RecordBuilder {
	return &RecordBuilder{schema: s, values: make([]any, len(s.fields))}
}

// Set assigns field name. A nil v clears the field. Nested fields take a
// *RecordValue of the nested schema.
func (b *RecordBuilder) Set(name string, v any) *RecordBuilder {
	if b.err != nil {
		return b
	}
	i, ok := b.schema.index[name]
	if !ok {
		b.err = ku.UnexpectedElement(name, b.schema.name)
		return b
	}
	if v == nil {
		b.values[i] = nil
		return b
	}
	f := b.schema.fields[i]
	path := ku.RootPath().Elem(b.schema.name).Elem(name).String()
	if f.Record != nil {
		rv, ok := v.(*RecordValue)
		if !ok || rv == nil {
			b.err = ku.InvalidType(name, f.Record.name, typeName(v)).Locate(path, name, -1)
			return b
		}
		if rv.schema != f.Record {
			b.err = schemaMismatch(name, f.Record, rv.schema).Locate(path, name, -1)
			return b
		}
		b.values[i] = rv
		return b
	}
	cv, err := f.Scalar.Coerce(v)
	if err != nil {
		b.err = ku.ToIssues(err, -1).Locate(path, name, -1)
		return b
	}
	b.values[i] = cv
	return b
}

// SetRecord assigns a nested record field.
func (b *RecordBuilder) SetRecord(name string, r *RecordValue) *RecordBuilder {
	if r == nil {
		return b.Set(name, nil)
	}
	return b.Set(name, r)
}

// Build returns the record or the first problem found: an unknown field, a
// value of the wrong type, or a missing required field.
func (b *RecordBuilder) Build() (*RecordValue, error) {
	if b.err != nil {
		return nil, b.err
	}
	if iss := missingRequired(b.schema, b.values); iss != nil {
		return nil, iss.Locate(ku.RootPath().Elem(b.schema.name).String(), "", -1)
	}
	return &RecordValue{schema: b.schema, values: append([]any(nil), b.values...)}, nil
}

// MustBuild is Build for literals known to be valid; it panics on error.
func (b *RecordBuilder) MustBuild() *RecordValue {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// missingRequired reports the first required field without a value, in
// declaration order.
func missingRequired(s *RecordSchema, values []any) ku.Issues {
	for i, f := range s.fields {
		if f.Required && values[i] == nil {
			return ku.MissingElement(f.Name, s.name)
		}
	}
	return nil
}

func typeName(v any) string {
	if rv, ok := v.(*RecordValue); ok && rv != nil {
		return rv.schema.name
	}
	return fmt.Sprintf("%T", v)
}

// schemaMismatch reports a record built from another schema than want. Two
// schemas may share a name, so identity decides.
func schemaMismatch(field string, want, got *RecordSchema) ku.Issues {
	gotName := got.name
	if gotName == want.name {
		gotName += " (a different schema of the same name)"
	}
	return ku.InvalidType(field, want.name, gotName)
}
