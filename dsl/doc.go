// Package dsl declares record schemas and runs the record codec engine over
// them.
//
// Overview
//   - Builder API: declare a record's child elements in wire order with
//     Record(name).Field(...).Code(...).Required() and Nested(...).
//   - Adapters: ScalarAdapter wraps any ku.Codec[T]; Bool/Int/Long/Float/
//     Decimal/String/DateTime/IdentityNumber cover the leaf types of the
//     format, Enum and Restricted wrap closed sets and constrained scalars.
//   - Values: RecordValue is the immutable result of decoding; RecordBuilder
//     assembles one in code and enforces required fields.
//   - Variants: VariantSet dispatches a content wrapper to the schema named
//     by its first child element.
//
// Decoding is fail-fast. The first unknown child, faltkod mismatch, codec
// failure, truncated input or missing required field aborts with Issues
// carrying the element path. Encoding writes fields in declaration order and
// omits absent optional fields.
//
// File layout (roles)
//   - adapter.go, primitives.go: ScalarAdapter and the leaf adapters.
//   - schema.go, record_builder.go: FieldSpec/RecordSchema and the builder.
//   - record_value.go: RecordValue, RecordBuilder, Get[T].
//   - record_stream.go: the decode engine.
//   - record_encode.go: the encode engine.
//   - variant.go: VariantSet.
//
// Example
//
//	ku10 := dsl.Record("KU10").
//	    Field("AvdragenSkatt", dsl.Int()).Code("001").
//	    Field("Inkomstar", dsl.String()).Code("203").Required().
//	    Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
//	    MustBuild()
//
//	rec, err := ku10.DecodeBytes(ctx, data)
//	if err != nil {
//	    // err is ku.Issues
//	}
//	year, _ := dsl.Get[string](rec, "Inkomstar")
package dsl
