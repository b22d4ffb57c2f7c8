package gen

import (
	"strings"
	"testing"

	"github.com/reoring/kontrolluppgift/codec"
	ir "github.com/reoring/kontrolluppgift/internal/ir"
)

func TestRenderFile_Minimal(t *testing.T) {
	out, err := RenderFile(File{Package: "foo"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.HasPrefix(string(out), "// Code generated") || !strings.Contains(string(out), "package foo") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, err := RenderFile(File{}); err == nil {
		t.Fatalf("want an error for an empty package name")
	}
}

func TestRender_Catalog(t *testing.T) {
	cat := &ir.Catalog{
		Scalars: []ir.SimpleType{
			{Name: "Belopp", Ident: "Belopp", Base: "xs:int", Kind: ir.KindInt,
				Facets: codec.Restriction{MinInclusive: "0", MaxLength: codec.IntPtr(9), Patterns: []string{`\d+`}}},
			{Name: "Fritext", Ident: "Fritext", Base: "xs:string", Kind: ir.KindString},
			{Name: "Narfart-Fjarrfart", Ident: "NarfarttoFjarrfart", Base: "xs:string", Kind: ir.KindString,
				Facets: codec.Restriction{Enumeration: []string{"N", "F"}},
				Enum:   []ir.EnumValue{{Value: "N", Ident: "N", Doc: "Närfart\n  inrikes"}, {Value: "F", Ident: "F"}}},
		},
		Records: []ir.Record{
			{Name: "Inre", Ident: "Inre", Fields: []ir.Field{{Name: "Text", Type: "Fritext"}}},
			{Name: "Yttre", Ident: "Yttre", Fields: []ir.Field{
				{Name: "Summa", Code: "011", Type: "Belopp", Required: true},
				{Name: "Fart", Code: "028", Type: "Narfart-Fjarrfart"},
				{Name: "Dagar", Code: "027", Type: "xs:long"},
				{Name: "Inre", Record: "Inre", Required: true},
			}},
		},
	}
	out, err := Render("tabeller", cat)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		`"github.com/reoring/kontrolluppgift/codec"`,
		"type NarfarttoFjarrfart string",
		`NarfarttoFjarrfartN NarfarttoFjarrfart = "N" // Närfart inrikes`,
		`var NarfarttoFjarrfartCodec = codec.Enum("Narfart-Fjarrfart",`,
		`var BeloppCodec = codec.MustRestrict("Belopp", codec.Int(), codec.Restriction{`,
		`MaxLength:    codec.IntPtr(9),`,
		"Patterns:     []string{\"\\\\d+\"},",
		`Field("Text", dsl.String()).Optional().`,
		`Field("Summa", dsl.Restricted(BeloppCodec)).Code("011").Required().`,
		`Field("Fart", dsl.Enum(NarfarttoFjarrfartCodec)).Code("028").Optional().`,
		`Field("Dagar", dsl.Long()).Code("027").Optional().`,
		`Nested("Inre", Inre).Required().`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output lacks %s\n%s", want, src)
		}
	}
}

func TestView_UniqueIdentifiers(t *testing.T) {
	cat := &ir.Catalog{
		Scalars: []ir.SimpleType{{Name: "Status", Ident: "Status", Kind: ir.KindString,
			Facets: codec.Restriction{Enumeration: []string{"A"}}, Enum: []ir.EnumValue{{Value: "A", Ident: "A"}}}},
		Records: []ir.Record{{Name: "Status", Ident: "Status"}},
	}
	f, err := View("p", cat)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if f.Enums[0].Type != "Status" || f.Records[0].Var != "Status2" {
		t.Fatalf("type=%s record=%s", f.Enums[0].Type, f.Records[0].Var)
	}
	if _, err := RenderFile(f); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestView_UnknownReferences(t *testing.T) {
	cases := []*ir.Catalog{
		{Records: []ir.Record{{Name: "A", Ident: "A", Fields: []ir.Field{{Name: "B", Record: "B"}}}}},
		{Records: []ir.Record{{Name: "A", Ident: "A", Fields: []ir.Field{{Name: "B", Type: "Saknas"}}}}},
	}
	for i, cat := range cases {
		if _, err := View("p", cat); err == nil {
			t.Errorf("case %d: want an error", i)
		}
	}
}
