package forms

import "github.com/reoring/kontrolluppgift/dsl"

var variants = dsl.MustVariantSet(KU10, KU13, KU14, KU16, KU19, KU20, KU21, KU25, KU26, KU28, KU30, KU31, KU32)

// Variants returns the forms accepted inside Blankettinnehall.
func Variants() *dsl.VariantSet { return variants }

// Schemas returns every form table including the nested blocks, keyed by
// element name.
func Schemas() map[string]*dsl.RecordSchema {
	out := make(map[string]*dsl.RecordSchema)
	for _, name := range variants.Names() {
		s, _ := variants.Lookup(name)
		collect(out, s)
	}
	return out
}

func collect(out map[string]*dsl.RecordSchema, s *dsl.RecordSchema) {
	out[s.Name()] = s
	for _, f := range s.Fields() {
		if f.Record != nil {
			collect(out, f.Record)
		}
	}
}
