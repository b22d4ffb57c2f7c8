package xsdimport

import (
	"fmt"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	ku "github.com/reoring/kontrolluppgift"
	"github.com/reoring/kontrolluppgift/codec"
	"github.com/reoring/kontrolluppgift/dsl"
	"github.com/reoring/kontrolluppgift/internal/gen"
	"github.com/reoring/kontrolluppgift/internal/ir"
)

// Scalar is an ingested simple type together with its runtime codec.
type Scalar struct {
	Name string
	// Base is the declared restriction base, for example "xs:int" or
	// "gm:Belopp".
	Base   string
	Kind   string
	Facets codec.Restriction
	// Enum lists the enumeration members with their documentation.
	Enum    []ir.EnumValue
	Adapter dsl.ScalarAdapter
}

// Catalog holds everything ingested from a schema set.
type Catalog struct {
	desc    *ir.Catalog
	scalars map[string]Scalar
	records map[string]*dsl.RecordSchema
}

func newCatalog(desc *ir.Catalog) (*Catalog, error) {
	c := &Catalog{
		desc:    desc,
		scalars: make(map[string]Scalar, len(desc.Scalars)),
		records: make(map[string]*dsl.RecordSchema, len(desc.Records)),
	}
	var err error
	for _, st := range desc.Scalars {
		ad, e := scalarAdapter(st)
		if e != nil {
			err = multierr.Append(err, e)
			continue
		}
		c.scalars[st.Name] = Scalar{
			Name:    st.Name,
			Base:    st.Base,
			Kind:    string(st.Kind),
			Facets:  st.Facets,
			Enum:    st.Enum,
			Adapter: ad,
		}
	}
	if err != nil {
		return nil, err
	}
	// nested records precede the records that contain them
	for _, r := range desc.Records {
		s, e := c.buildRecord(r)
		if e != nil {
			err = multierr.Append(err, e)
			continue
		}
		c.records[r.Name] = s
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) buildRecord(r ir.Record) (*dsl.RecordSchema, error) {
	b := dsl.Record(r.Name)
	for _, f := range r.Fields {
		if f.Nested() {
			nested, ok := c.records[f.Record]
			if !ok {
				return nil, fmt.Errorf("record %s: nested record %s is not built", r.Name, f.Record)
			}
			step := b.Nested(f.Name, nested)
			if f.Required {
				step.Required()
			}
			continue
		}
		ad, err := c.fieldAdapter(f.Type)
		if err != nil {
			return nil, fmt.Errorf("record %s: field %s: %w", r.Name, f.Name, err)
		}
		step := b.Field(f.Name, ad)
		if f.Code != "" {
			step.Code(f.Code)
		}
		if f.Required {
			step.Required()
		}
	}
	return b.Build()
}

func (c *Catalog) fieldAdapter(typ string) (dsl.ScalarAdapter, error) {
	if local, ok := strings.CutPrefix(typ, "xs:"); ok {
		kind, ok := builtinKinds[local]
		if !ok {
			return dsl.ScalarAdapter{}, fmt.Errorf("unsupported base type %s", typ)
		}
		return builtinAdapter(kind), nil
	}
	sc, ok := c.scalars[typ]
	if !ok {
		return dsl.ScalarAdapter{}, fmt.Errorf("unknown type %s", typ)
	}
	return sc.Adapter, nil
}

func builtinAdapter(k ir.Kind) dsl.ScalarAdapter {
	switch k {
	case ir.KindInt:
		return dsl.Int()
	case ir.KindLong:
		return dsl.Long()
	case ir.KindDecimal:
		return dsl.Decimal()
	case ir.KindBool:
		return dsl.Bool()
	case ir.KindDateTime:
		return dsl.DateTime()
	default:
		return dsl.String()
	}
}

func scalarAdapter(st ir.SimpleType) (dsl.ScalarAdapter, error) {
	if st.Facets.IsZero() {
		return builtinAdapter(st.Kind), nil
	}
	if st.IsEnum() {
		return dsl.Enum(codec.Enum(st.Name, st.Facets.Enumeration...)), nil
	}
	switch st.Kind {
	case ir.KindInt:
		return restricted(st.Name, codec.Int(), st.Facets)
	case ir.KindLong:
		return restricted(st.Name, codec.Long(), st.Facets)
	case ir.KindDecimal:
		return restricted(st.Name, codec.Decimal(), st.Facets)
	case ir.KindBool:
		return restricted(st.Name, codec.Bool(), st.Facets)
	case ir.KindDateTime:
		return restricted(st.Name, codec.DateTime(), st.Facets)
	default:
		return restricted(st.Name, codec.String(), st.Facets)
	}
}

func restricted[T any](name string, base ku.Codec[T], r codec.Restriction) (dsl.ScalarAdapter, error) {
	c, err := codec.Restrict(name, base, r)
	if err != nil {
		return dsl.ScalarAdapter{}, err
	}
	return dsl.Restricted(c), nil
}

// Scalar returns the ingested simple type called name.
func (c *Catalog) Scalar(name string) (Scalar, bool) {
	s, ok := c.scalars[name]
	return s, ok
}

// ScalarNames lists the simple type names in natural order.
func (c *Catalog) ScalarNames() []string { return sortedKeys(c.scalars) }

// Record returns the record schema bound to element name.
func (c *Catalog) Record(name string) (*dsl.RecordSchema, bool) {
	s, ok := c.records[name]
	return s, ok
}

// RecordNames lists the record names in natural order.
func (c *Catalog) RecordNames() []string { return sortedKeys(c.records) }

// Variants builds a variant set from the named records.
func (c *Catalog) Variants(names ...string) (*dsl.VariantSet, error) {
	schemas := make([]*dsl.RecordSchema, 0, len(names))
	for _, n := range names {
		s, ok := c.records[n]
		if !ok {
			return nil, fmt.Errorf("xsdimport: no record %s in catalog", n)
		}
		schemas = append(schemas, s)
	}
	return dsl.NewVariantSet(schemas...)
}

// JSON renders the catalog description as indented JSON.
func (c *Catalog) JSON() ([]byte, error) {
	return json.MarshalIndent(c.desc, "", "  ")
}

// YAML renders the catalog description as YAML.
func (c *Catalog) YAML() ([]byte, error) {
	return yaml.Marshal(c.desc)
}

// GoSource renders the catalog as a Go file of package pkg declaring the
// codecs and record schemas.
func (c *Catalog) GoSource(pkg string) ([]byte, error) {
	return gen.Render(pkg, c.desc)
}

// Diff compares a hand written record schema with the ingested record of
// the same name and describes every difference: missing or extra fields,
// faltkod, cardinality and nesting mismatches. Nested records are compared
// recursively. An empty result means the schemas agree.
func (c *Catalog) Diff(s *dsl.RecordSchema) []string {
	var out []string
	c.diff(s, s.Name(), &out)
	return out
}

func (c *Catalog) diff(s *dsl.RecordSchema, path string, out *[]string) {
	want, ok := c.records[s.Name()]
	if !ok {
		*out = append(*out, fmt.Sprintf("%s: record %s not in catalog", path, s.Name()))
		return
	}
	for _, f := range s.Fields() {
		at := path + "/" + f.Name
		w, ok := want.Field(f.Name)
		if !ok {
			*out = append(*out, at+": not declared by the schema")
			continue
		}
		if f.Code != w.Code {
			*out = append(*out, fmt.Sprintf("%s: faltkod %q, schema has %q", at, f.Code, w.Code))
		}
		if f.Required != w.Required {
			*out = append(*out, fmt.Sprintf("%s: required=%t, schema has required=%t", at, f.Required, w.Required))
		}
		if f.Kind() != w.Kind() {
			*out = append(*out, fmt.Sprintf("%s: %s field, schema has a %s field", at, f.Kind(), w.Kind()))
			continue
		}
		if f.Record != nil {
			c.diff(f.Record, at, out)
		}
	}
	for _, w := range want.Fields() {
		if _, ok := s.Field(w.Name); !ok {
			*out = append(*out, path+"/"+w.Name+": missing")
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	return out
}
