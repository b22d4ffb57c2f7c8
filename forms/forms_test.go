package forms_test

import (
	"context"
	"strings"
	"testing"

	ku "github.com/reoring/kontrolluppgift"
	"github.com/reoring/kontrolluppgift/codec"
	"github.com/reoring/kontrolluppgift/dsl"
	"github.com/reoring/kontrolluppgift/forms"
)

func TestVariants_NaturalOrder(t *testing.T) {
	got := strings.Join(forms.Variants().Names(), ",")
	if got != "KU10,KU13,KU14,KU16,KU19,KU20,KU21,KU25,KU26,KU28,KU30,KU31,KU32" {
		t.Fatalf("names: %s", got)
	}
	if _, ok := forms.Variants().Lookup("KU17"); ok {
		t.Fatalf("KU17 is not registered")
	}
}

func TestSchemas_IncludeNestedBlocks(t *testing.T) {
	all := forms.Schemas()
	for _, name := range []string{"KU10", "InkomsttagareKU10", "UppgiftslamnareKU10", "InkomsttagareKU25", "UppgiftslamnareKU21", "InkomsttagareKU31", "UppgiftslamnareKU32"} {
		if _, ok := all[name]; !ok {
			t.Errorf("missing %s", name)
		}
	}
	if len(all) != 39 {
		t.Fatalf("want 39 schemas, got %d", len(all))
	}
}

func TestSchemas_FieldCodesAreUnique(t *testing.T) {
	for name, s := range forms.Schemas() {
		seen := map[string]string{}
		for _, f := range s.Fields() {
			if f.Code == "" {
				continue
			}
			if prev, dup := seen[f.Code]; dup {
				t.Errorf("%s: faltkod %s used by %s and %s", name, f.Code, prev, f.Name)
			}
			seen[f.Code] = f.Name
		}
	}
}

func TestKU10_RequiredFields(t *testing.T) {
	if got := strings.Join(forms.KU10.Required(), ","); got != "Inkomstar,Specifikationsnummer,InkomsttagareKU10,UppgiftslamnareKU10" {
		t.Fatalf("required: %s", got)
	}
	f, _ := forms.KU10.Field("DrivmedelVidBilforman")
	if f.Code != "018" {
		t.Fatalf("faltkod: %s", f.Code)
	}
}

const ku13XML = `<KU13>
  <KontantBruttolonMm faltkod="011">1</KontantBruttolonMm>
  <Inkomstar faltkod="203">2022</Inkomstar>
  <Specifikationsnummer faltkod="570">5</Specifikationsnummer>
  <InkomsttagareKU13>
    <LandskodTIN faltkod="076">SE</LandskodTIN>
    <Inkomsttagare faltkod="215">191612299279</Inkomsttagare>
    <LandskodPostort faltkod="221">FI</LandskodPostort>
  </InkomsttagareKU13>
  <UppgiftslamnareKU13>
    <UppgiftslamnarId faltkod="201">165599990602</UppgiftslamnarId>
  </UppgiftslamnareKU13>
</KU13>`

func TestKU13_TypedRecipient(t *testing.T) {
	rec, err := forms.KU13.DecodeBytes(context.Background(), []byte(ku13XML))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	who, _ := rec.Nested("InkomsttagareKU13")
	if lk, ok := dsl.Get[forms.Landskod](who, "LandskodPostort"); !ok || lk != "FI" {
		t.Fatalf("LandskodPostort: %v %v", lk, ok)
	}
	id, ok := dsl.Get[codec.Validated[string]](who, "Inkomsttagare")
	if !ok || !id.IsValid() || id.Value() != "191612299279" {
		t.Fatalf("Inkomsttagare: %#v", id)
	}
	if s, _ := dsl.Get[string](who, "Inkomsttagare"); s != "191612299279" {
		t.Fatalf("unwrapped: %q", s)
	}
}

func TestKU13_RejectsBadCountryAndIdentity(t *testing.T) {
	cases := []struct {
		name, from, to, code string
	}{
		{"landskod", ">SE<", ">SWE<", ku.CodeUnexpectedToken},
		{"identity", ">191612299279<", ">19161229927<", ku.CodeConstraintViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := strings.Replace(ku13XML, tc.from, tc.to, 1)
			_, err := forms.KU13.DecodeBytes(context.Background(), []byte(doc))
			it, ok := ku.FirstIssue(err)
			if !ok || it.Code != tc.code {
				t.Fatalf("want %s, got %v", tc.code, err)
			}
			if !strings.HasPrefix(it.Path, "/KU13/InkomsttagareKU13/") {
				t.Fatalf("path: %s", it.Path)
			}
		})
	}
}

func TestLandskod(t *testing.T) {
	for _, c := range []forms.Landskod{"SE", "XK", "AN", "ZW"} {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if forms.Landskod("se").Valid() || forms.Landskod("EU").Valid() {
		t.Fatalf("lower case and non-members must be rejected")
	}
	if n := len(forms.LandskodCodec().Values()); n != 251 {
		t.Fatalf("want 251 codes, got %d", n)
	}
}

func ku16Record(t *testing.T, days any, fart any) (*dsl.RecordValue, error) {
	t.Helper()
	who := dsl.NewRecord(forms.InkomsttagareKU16).
		Set("Inkomsttagare", "191212121212").
		MustBuild()
	from := dsl.NewRecord(forms.UppgiftslamnareKU16).
		Set("UppgiftslamnarId", "165560000004").
		MustBuild()
	return dsl.NewRecord(forms.KU16).
		Set("AntalDagarSjoinkomst", days).
		Set("NarfartFjarrfart", fart).
		Set("Inkomstar", "2022").
		Set("Specifikationsnummer", int32(1)).
		SetRecord("InkomsttagareKU16", who).
		SetRecord("UppgiftslamnareKU16", from).
		Build()
}

func TestKU16_DaysAtSeaAndTradeArea(t *testing.T) {
	rec, err := ku16Record(t, int32(200), forms.Fjarrfart)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := forms.KU16.EncodeBytes(context.Background(), rec, ku.EncodeOpt{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, want := range []string{
		`<AntalDagarSjoinkomst faltkod="027">200</AntalDagarSjoinkomst>`,
		`<NarfartFjarrfart faltkod="028">F</NarfartFjarrfart>`,
	} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("missing %s in %s", want, out)
		}
	}
	back, err := forms.KU16.DecodeBytes(context.Background(), out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !back.Equal(rec) {
		t.Fatalf("round trip differs: %v vs %v", back.AsMap(), rec.AsMap())
	}

	if _, err := ku16Record(t, int32(367), forms.Narfart); !ku.HasCode(err, ku.CodeConstraintViolation) {
		t.Fatalf("367 days: %v", err)
	}
	if _, err := ku16Record(t, int32(1), forms.NarfartFjarrfart("X")); !ku.HasCode(err, ku.CodeUnexpectedToken) {
		t.Fatalf("trade area X: %v", err)
	}
}

func TestKU21_Fractions(t *testing.T) {
	doc := `<KU21>
  <Inkomstar faltkod="203">2022</Inkomstar>
  <AndelAvDepan faltkod="524">8</AndelAvDepan>
  <ErhallenRantekompensation faltkod="525">0.5</ErhallenRantekompensation>
  <Specifikationsnummer faltkod="570">5</Specifikationsnummer>
  <InkomsttagareKU21><Fodelseort faltkod="077">Ort</Fodelseort></InkomsttagareKU21>
  <UppgiftslamnareKU21><UppgiftslamnarId faltkod="201">165599990602</UppgiftslamnarId></UppgiftslamnareKU21>
</KU21>`
	rec, err := forms.KU21.DecodeBytes(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v, _ := dsl.Get[float32](rec, "AndelAvDepan"); v != 8 {
		t.Fatalf("AndelAvDepan: %v", v)
	}
	if v, _ := dsl.Get[float32](rec, "ErhallenRantekompensation"); v != 0.5 {
		t.Fatalf("ErhallenRantekompensation: %v", v)
	}
	_, err = forms.KU21.DecodeBytes(context.Background(), []byte(strings.Replace(doc, ">0.5<", ">halv<", 1)))
	if !ku.HasCode(err, ku.CodeUnexpectedToken) {
		t.Fatalf("want unexpected_token, got %v", err)
	}
}

func TestVariants_DispatchKU20(t *testing.T) {
	doc := `<KU20>
  <Inkomstar faltkod="203">2022</Inkomstar>
  <Ranteinkomst faltkod="500">300</Ranteinkomst>
  <Specifikationsnummer faltkod="570">1</Specifikationsnummer>
  <InkomsttagareKU20/>
  <UppgiftslamnareKU20><UppgiftslamnarId faltkod="201">165599990602</UppgiftslamnarId></UppgiftslamnareKU20>
</KU20>`
	s, ok := forms.Variants().Lookup("KU20")
	if !ok {
		t.Fatalf("KU20 not registered")
	}
	rec, err := s.DecodeBytes(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	v, err := forms.Variants().NewVariant(rec)
	if err != nil || v.Name != "KU20" {
		t.Fatalf("variant: %+v %v", v, err)
	}
	if n, _ := dsl.Get[int32](rec, "Ranteinkomst"); n != 300 {
		t.Fatalf("Ranteinkomst: %d", n)
	}
}

const ku14XML = `<KU14>
  <KontantBruttolonMm faltkod="011">1</KontantBruttolonMm>
  <LandskodArbetsland faltkod="090">FI</LandskodArbetsland>
  <UtsandUnderTid faltkod="091">A</UtsandUnderTid>
  <Kategori faltkod="092">B</Kategori>
  <Inkomstar faltkod="203">2022</Inkomstar>
  <Specifikationsnummer faltkod="570">5</Specifikationsnummer>
  <InkomsttagareKU14>
    <LandskodMedborgare faltkod="081">FI</LandskodMedborgare>
    <Inkomsttagare faltkod="215">191612299279</Inkomsttagare>
  </InkomsttagareKU14>
  <UppgiftslamnareKU14><UppgiftslamnarId faltkod="201">165599990602</UppgiftslamnarId></UppgiftslamnareKU14>
</KU14>`

func TestKU14_PostingCategories(t *testing.T) {
	rec, err := forms.KU14.DecodeBytes(context.Background(), []byte(ku14XML))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if k, ok := dsl.Get[forms.KU14Kategori](rec, "Kategori"); !ok || k != "B" {
		t.Fatalf("Kategori: %v %v", k, ok)
	}
	if u, ok := dsl.Get[forms.KU14UtsandUnderTid](rec, "UtsandUnderTid"); !ok || u != "A" {
		t.Fatalf("UtsandUnderTid: %v %v", u, ok)
	}
	_, err = forms.KU14.DecodeBytes(context.Background(), []byte(strings.Replace(ku14XML, ">B<", ">G<", 1)))
	if !ku.HasCode(err, ku.CodeUnexpectedToken) {
		t.Fatalf("category G: %v", err)
	}
}

func TestKU31_RecordDate(t *testing.T) {
	doc := `<KU31>
  <AvdragenKupongskatt faltkod="003">30</AvdragenKupongskatt>
  <Inkomstar faltkod="203">2022</Inkomstar>
  <Specifikationsnummer faltkod="570">5</Specifikationsnummer>
  <UtbetaldUtdelning faltkod="574">100</UtbetaldUtdelning>
  <Avstamningsdag faltkod="853">2022-05-04</Avstamningsdag>
  <InkomsttagareKU31><LandskodHemvist faltkod="079">NO</LandskodHemvist></InkomsttagareKU31>
  <UppgiftslamnareKU31><UppgiftslamnarId faltkod="201">165599990602</UppgiftslamnarId></UppgiftslamnareKU31>
</KU31>`
	rec, err := forms.KU31.DecodeBytes(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d, _ := dsl.Get[string](rec, "Avstamningsdag"); d != "2022-05-04" {
		t.Fatalf("Avstamningsdag: %q", d)
	}
	_, err = forms.KU31.DecodeBytes(context.Background(), []byte(strings.Replace(doc, "2022-05-04", "4 maj", 1)))
	if !ku.HasCode(err, ku.CodeConstraintViolation) {
		t.Fatalf("want constraint_violation, got %v", err)
	}
}

func TestVariants_DispatchAllForms(t *testing.T) {
	vs := forms.Variants()
	for _, name := range vs.Names() {
		s, ok := vs.Lookup(name)
		if !ok || s.Name() != name {
			t.Fatalf("%s: lookup returned %v", name, s)
		}
		var b strings.Builder
		b.WriteString("<Blankettinnehall><" + name + `>
  <Inkomstar faltkod="203">2022</Inkomstar>
  <Specifikationsnummer faltkod="570">1</Specifikationsnummer>
  <Inkomsttagare` + name + `/>
  <Uppgiftslamnare` + name + `><UppgiftslamnarId faltkod="201">165599990602</UppgiftslamnarId></Uppgiftslamnare` + name + `>
</` + name + "></Blankettinnehall>")
		src := ku.XMLReader(strings.NewReader(b.String()))
		wrapper, err := src.NextToken()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		v, err := vs.Decode(context.Background(), src, wrapper, "Blankett", ku.DefaultParseOpt())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if v.Name != name || v.Record.Schema() != s {
			t.Fatalf("%s dispatched to %s", name, v.Name)
		}
	}
}
