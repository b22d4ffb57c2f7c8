package forms

import "github.com/reoring/kontrolluppgift/dsl"

// provider builds the Uppgiftslamnare block that closes every form. The
// layout is identical across forms; only the element name differs.
func provider(name string) *dsl.RecordSchema {
	return dsl.Record(name).
		Field("UppgiftslamnarId", dsl.String()).Code("201").Required().
		Field("NamnUppgiftslamnare", dsl.String()).Code("202").
		MustBuild()
}
