package dsl

// FieldKind distinguishes leaf fields from nested records.
type FieldKind int

const (
	ScalarField FieldKind = iota
	NestedField
)

func (k FieldKind) String() string {
	if k == NestedField {
		return "nested"
	}
	return "scalar"
}

// FieldSpec describes one child element of a record.
type FieldSpec struct {
	// Name is the element local name on the wire.
	Name string
	// Code is the three digit faltkod carried by the element, empty when the
	// element has none.
	Code     string
	Required bool
	// Scalar is set for leaf fields.
	Scalar ScalarAdapter
	// Record is set for nested fields.
	Record *RecordSchema
}

// Kind reports whether the field is a leaf or a nested record.
func (f FieldSpec) Kind() FieldKind {
	if f.Record != nil {
		return NestedField
	}
	return ScalarField
}

// TypeName names the codec or nested record of the field.
func (f FieldSpec) TypeName() string {
	if f.Record != nil {
		return f.Record.Name()
	}
	return f.Scalar.Name()
}

// RecordSchema is an immutable, ordered description of one record type. It
// drives both decoding and encoding of the element it describes.
type RecordSchema struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// Name returns the record's root element name.
func (s *RecordSchema) Name() string { return s.name }

// Fields returns the field specs in declaration order.
func (s *RecordSchema) Fields() []FieldSpec { return append([]FieldSpec(nil), s.fields...) }

// Len returns the number of declared fields.
func (s *RecordSchema) Len() int { return len(s.fields) }

// Field looks up a field by wire name.
func (s *RecordSchema) Field(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Required lists the wire names of required fields in declaration order.
func (s *RecordSchema) Required() []string {
	var out []string
	for _, f := range s.fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
