package dsl_test

import (
	"context"
	"strings"
	"testing"

	ku "github.com/reoring/kontrolluppgift"
	"github.com/reoring/kontrolluppgift/codec"
	g "github.com/reoring/kontrolluppgift/dsl"
)

func validRecipient(t *testing.T) *g.RecordValue {
	t.Helper()
	r, err := g.NewRecord(recipient).Set("Inkomsttagare", "191212121212").Build()
	if err != nil {
		t.Fatalf("recipient: %v", err)
	}
	return r
}

func TestRecordBuilder_BuildsEncodableValue(t *testing.T) {
	prov := g.NewRecord(provider).
		Set("UppgiftslamnarId", codec.IdentityNumber().MustNew("165560000004")).
		Set("NamnUppgiftslamnare", "Bolaget AB").
		MustBuild()
	rec, err := g.NewRecord(ku10).
		Set("Inkomstar", "2022").
		Set("Specifikationsnummer", int32(5)).
		SetRecord("InkomsttagareKU10", validRecipient(t)).
		SetRecord("UppgiftslamnareKU10", prov).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := ku10.EncodeBytes(context.Background(), rec, ku.EncodeOpt{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(string(out), `<KU10><Inkomstar faltkod="203">2022</Inkomstar><Specifikationsnummer faltkod="570">5</Specifikationsnummer>`) {
		t.Fatalf("absent optional fields must be omitted: %s", out)
	}
}

func TestRecordBuilder_Errors(t *testing.T) {
	_, err := g.NewRecord(ku10).Set("Okand", "x").Build()
	if it, _ := ku.FirstIssue(err); it.Code != ku.CodeUnexpectedElement || it.Element != "Okand" {
		t.Fatalf("unknown field: %v", err)
	}

	_, err = g.NewRecord(ku10).Set("Specifikationsnummer", 5).Build()
	if it, _ := ku.FirstIssue(err); it.Code != ku.CodeInvalidType || it.Got != "int" || it.Path != "/KU10/Specifikationsnummer" {
		t.Fatalf("wrong Go type: %v", err)
	}

	_, err = g.NewRecord(ku10).SetRecord("InkomsttagareKU10", g.NewRecord(provider).Set("UppgiftslamnarId", "165560000004").MustBuild()).Build()
	if it, _ := ku.FirstIssue(err); it.Code != ku.CodeInvalidType || it.Got != "UppgiftslamnareKU10" {
		t.Fatalf("wrong nested record: %v", err)
	}

	_, err = g.NewRecord(recipient).Set("Inkomsttagare", "123").Build()
	if !ku.HasCode(err, ku.CodeConstraintViolation) {
		t.Fatalf("invalid identity number: %v", err)
	}

	_, err = g.NewRecord(ku10).Set("Inkomstar", "2022").Build()
	if it, _ := ku.FirstIssue(err); it.Code != ku.CodeMissingElement || it.Missing != "Specifikationsnummer" {
		t.Fatalf("missing required: %v", err)
	}
}

func TestRecordBuilder_NilClearsField(t *testing.T) {
	r, err := g.NewRecord(recipient).
		Set("Inkomsttagare", "191212121212").
		Set("Fornamn", "Anna").
		Set("Fornamn", nil).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if r.Has("Fornamn") {
		t.Fatalf("nil must clear the field")
	}
}

func TestSchemaBuilder_Validation(t *testing.T) {
	_, err := g.Record("X").
		Field("A", g.String()).Code("12").
		Field("A", g.String()).
		Nested("N", recipient).Code("100").
		Field("B", g.ScalarAdapter{}).
		Build()
	if err == nil {
		t.Fatalf("expected build errors")
	}
	msg := err.Error()
	for _, want := range []string{"not three digits", "duplicate field A", "nested records carry no faltkod", "X.B: no codec"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %q", msg, want)
		}
	}
	if _, err := g.Record("").Build(); err == nil {
		t.Fatalf("empty name accepted")
	}
}

func TestSchema_Introspection(t *testing.T) {
	f, ok := ku10.Field("Inkomstar")
	if !ok || f.Code != "203" || !f.Required || f.Kind() != g.ScalarField || f.TypeName() != "string" {
		t.Fatalf("field: %+v", f)
	}
	n, _ := ku10.Field("InkomsttagareKU10")
	if n.Kind() != g.NestedField || n.TypeName() != "InkomsttagareKU10" {
		t.Fatalf("nested: %+v", n)
	}
	if got := strings.Join(ku10.Required(), ","); got != "Inkomstar,Specifikationsnummer,InkomsttagareKU10,UppgiftslamnareKU10" {
		t.Fatalf("required: %s", got)
	}
	fs := ku10.Fields()
	fs[0].Name = "mutated"
	if ku10.Fields()[0].Name != "AvdragenSkatt" {
		t.Fatalf("Fields must return a copy")
	}
}

func TestAdapters(t *testing.T) {
	type trafik string
	ad := g.Enum(codec.Enum[trafik]("NarfartFjarrfart", "N", "F"))
	if _, err := ad.Coerce(trafik("X")); err == nil {
		t.Fatalf("enum coerce must reject unknown literal")
	}
	if ad.GoType() == "" || ad.Name() != "NarfartFjarrfart" {
		t.Fatalf("adapter metadata: %q %q", ad.GoType(), ad.Name())
	}
	belopp := g.Restricted(codec.MustRestrict("Belopp", codec.Long(), codec.Restriction{MinInclusive: "0"}))
	v, err := belopp.Coerce(int64(12))
	if err != nil {
		t.Fatalf("restricted coerce: %v", err)
	}
	if s, _ := belopp.Encode(v); s != "12" {
		t.Fatalf("encode: %q", s)
	}
	if _, err := belopp.Coerce(int64(-1)); !ku.HasCode(err, ku.CodeConstraintViolation) {
		t.Fatalf("restricted coerce must validate: %v", err)
	}
	if !g.Float().Equal(float32(0.5), float32(0.5)) || g.Float().Equal(float32(0.5), "0.5") {
		t.Fatalf("Equal compares wire forms of well-typed values")
	}
}

func TestRecord_SchemaIdentity(t *testing.T) {
	withX := g.Record("R").Field("x", g.Int()).MustBuild()
	withY := g.Record("R").Field("y", g.Int()).MustBuild()
	outer := g.Record("O").Nested("R", withX).MustBuild()

	a := g.NewRecord(withX).Set("x", int32(1)).MustBuild()
	b := g.NewRecord(withY).Set("y", int32(1)).MustBuild()
	if a.Equal(b) || b.Equal(a) {
		t.Fatalf("records of different schemas named R compare equal")
	}
	if !a.Equal(g.NewRecord(withX).Set("x", int32(1)).MustBuild()) {
		t.Fatalf("records of the same schema differ")
	}

	_, err := g.NewRecord(outer).SetRecord("R", b).Build()
	if !ku.HasCode(err, ku.CodeInvalidType) {
		t.Fatalf("nested record of a foreign schema accepted: %v", err)
	}

	if _, err := withX.EncodeBytes(context.Background(), b); !ku.HasCode(err, ku.CodeInvalidType) {
		t.Fatalf("encode of a foreign record: %v", err)
	}

	vs := g.MustVariantSet(withX)
	if _, err := vs.NewVariant(b); !ku.HasCode(err, ku.CodeUnexpectedElement) {
		t.Fatalf("variant of a foreign schema accepted: %v", err)
	}
	if v, err := vs.NewVariant(a); err != nil || v.Name != "R" {
		t.Fatalf("variant = %+v, %v", v, err)
	}
}
