package ir

// Package ir describes an ingested schema catalog independently of the
// runtime codecs. The importer fills it, the code generator and the catalog
// exports read it. This package is internal and not part of the public API.

import "github.com/reoring/kontrolluppgift/codec"

// Kind is the primitive a simple type bottoms out in.
type Kind string

const (
	KindString   Kind = "string"
	KindInt      Kind = "int"
	KindLong     Kind = "long"
	KindDecimal  Kind = "decimal"
	KindBool     Kind = "bool"
	KindDateTime Kind = "dateTime"
)

// Catalog is the whole ingestion result.
type Catalog struct {
	Scalars []SimpleType `json:"scalars" yaml:"scalars"`
	Records []Record     `json:"records" yaml:"records"`
}

// SimpleType is a named restriction of a primitive.
type SimpleType struct {
	Name   string           `json:"name" yaml:"name"`
	Ident  string           `json:"ident" yaml:"ident"`
	Base   string           `json:"base" yaml:"base"`
	Kind   Kind             `json:"kind" yaml:"kind"`
	Facets codec.Restriction `json:"facets" yaml:"facets"`
	Enum   []EnumValue      `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// IsEnum reports whether the type is a closed string set with no other
// facet.
func (s SimpleType) IsEnum() bool {
	if s.Kind != KindString || len(s.Enum) == 0 {
		return false
	}
	rest := s.Facets
	rest.Enumeration = nil
	return rest.IsZero()
}

// EnumValue is one enumeration member with its identifier and annotation.
type EnumValue struct {
	Value string `json:"value" yaml:"value"`
	Ident string `json:"ident" yaml:"ident"`
	Doc   string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Record is a complex type bound to an element name.
type Record struct {
	Name     string  `json:"name" yaml:"name"`
	Ident    string  `json:"ident" yaml:"ident"`
	TypeName string  `json:"type" yaml:"type"`
	Fields   []Field `json:"fields" yaml:"fields"`
}

// Field is one child element of a record. Exactly one of Type and Record is
// set: Type names a simple type (or a built-in such as xs:string), Record
// names a nested record.
type Field struct {
	Name     string `json:"name" yaml:"name"`
	Code     string `json:"code,omitempty" yaml:"code,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Record   string `json:"record,omitempty" yaml:"record,omitempty"`
	Required bool   `json:"required" yaml:"required"`
}

// Nested reports whether the field holds a nested record.
func (f Field) Nested() bool { return f.Record != "" }
