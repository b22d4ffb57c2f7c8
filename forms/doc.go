// Package forms holds the record tables of the Kontrolluppgift forms this
// module understands (KU10, KU13, KU14, KU16, KU19, KU20, KU21, KU25, KU26,
// KU28, KU30, KU31 and KU32) together with their recipient and provider
// blocks.
//
// Every table is an immutable *dsl.RecordSchema built at package
// initialisation. Variants returns the set used to dispatch the content of a
// Blankettinnehall element:
//
//	vs := forms.Variants()
//	s, _ := vs.Lookup("KU10")
//	rec, err := s.DecodeBytes(ctx, data)
package forms
