package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/reoring/kontrolluppgift/codec"
	"github.com/reoring/kontrolluppgift/internal/ir"
)

// File is the view rendered by the source template.
type File struct {
	Package    string
	Enums      []Enum
	Restricted []Restricted
	Records    []Record
}

// Enum is a closed string set rendered as a named string type, one constant
// per member and a codec variable.
type Enum struct {
	Name    string
	Type    string
	Codec   string
	Members []Member
}

// Member is one enumeration constant.
type Member struct {
	Const string
	Value string
	Doc   string
}

// Restricted is a restricted codec variable.
type Restricted struct {
	Name   string
	Var    string
	Base   string
	Facets []string
}

// Record is a record schema variable.
type Record struct {
	Name   string
	Var    string
	Fields []Field
}

// Field is one builder call chain of a record.
type Field struct {
	Method   string
	Name     string
	Arg      string
	Code     string
	Required bool
}

const source = `// Code generated by kontrolluppgift ingest. DO NOT EDIT.

package {{ .Package }}

import (
{{- if or .Enums .Restricted }}
	"github.com/reoring/kontrolluppgift/codec"
{{- end }}
{{- if .Records }}
	"github.com/reoring/kontrolluppgift/dsl"
{{- end }}
)

{{ range .Enums -}}
// {{ .Type }} is the {{ .Name }} enumeration.
type {{ .Type }} string

const (
{{- $t := .Type }}
{{- range .Members }}
	{{ .Const }} {{ $t }} = {{ quote .Value }}{{ if .Doc }} // {{ .Doc }}{{ end }}
{{- end }}
)

// {{ .Codec }} decodes and encodes {{ .Type }}.
var {{ .Codec }} = codec.Enum({{ quote .Name }},
{{- range .Members }}
	{{ .Const }},
{{- end }}
)

{{ end -}}
{{ range .Restricted -}}
// {{ .Var }} is the {{ .Name }} restriction of {{ .Base }}.
var {{ .Var }} = codec.MustRestrict({{ quote .Name }}, {{ .Base }}, codec.Restriction{
{{- range .Facets }}
	{{ . }},
{{- end }}
})

{{ end -}}
{{ range .Records -}}
// {{ .Var }} is the {{ .Name }} record.
var {{ .Var }} = dsl.Record({{ quote .Name }}).
{{- range .Fields }}
	{{ .Method }}({{ quote .Name }}, {{ .Arg }}).{{ if .Code }}Code({{ quote .Code }}).{{ end }}{{ if .Required }}Required(){{ else }}Optional(){{ end }}.
{{- end }}
	MustBuild()

{{ end -}}
`

var tmpl = template.Must(template.New("source").Funcs(sprig.TxtFuncMap()).Parse(source))

// RenderFile executes the source template over f and formats the result.
func RenderFile(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("gen: package name is empty")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

// Render turns an ingested catalog into Go source of package pkg.
func Render(pkg string, cat *ir.Catalog) ([]byte, error) {
	f, err := View(pkg, cat)
	if err != nil {
		return nil, err
	}
	return RenderFile(f)
}

// View builds the template view of cat. Identifiers are made unique across
// the file; a later declaration that clashes gets a numeric suffix.
func View(pkg string, cat *ir.Catalog) (File, error) {
	f := File{Package: pkg}
	used := map[string]int{}
	unique := func(id string) string {
		used[id]++
		if n := used[id]; n > 1 {
			return id + strconv.Itoa(n)
		}
		return id
	}
	adapters := map[string]string{}
	for _, st := range cat.Scalars {
		switch {
		case st.IsEnum():
			e := Enum{Name: st.Name, Type: unique(st.Ident)}
			e.Codec = unique(e.Type + "Codec")
			for _, m := range st.Enum {
				e.Members = append(e.Members, Member{
					Const: unique(e.Type + m.Ident),
					Value: m.Value,
					Doc:   strings.Join(strings.Fields(m.Doc), " "),
				})
			}
			f.Enums = append(f.Enums, e)
			adapters[st.Name] = "dsl.Enum(" + e.Codec + ")"
		case st.Facets.IsZero():
			adapters[st.Name] = builtinAdapter(st.Kind)
		default:
			r := Restricted{Name: st.Name, Var: unique(st.Ident + "Codec"), Base: baseCodec(st.Kind), Facets: facets(st.Facets)}
			f.Restricted = append(f.Restricted, r)
			adapters[st.Name] = "dsl.Restricted(" + r.Var + ")"
		}
	}
	vars := map[string]string{}
	for _, r := range cat.Records {
		vars[r.Name] = unique(r.Ident)
	}
	for _, r := range cat.Records {
		rec := Record{Name: r.Name, Var: vars[r.Name]}
		for _, fd := range r.Fields {
			field := Field{Name: fd.Name, Code: fd.Code, Required: fd.Required}
			switch {
			case fd.Nested():
				v, ok := vars[fd.Record]
				if !ok {
					return File{}, fmt.Errorf("gen: record %s: unknown nested record %s", r.Name, fd.Record)
				}
				field.Method, field.Arg = "Nested", v
			case strings.HasPrefix(fd.Type, "xs:"):
				field.Method, field.Arg = "Field", builtinAdapter(builtinKind(fd.Type))
			default:
				a, ok := adapters[fd.Type]
				if !ok {
					return File{}, fmt.Errorf("gen: record %s: unknown type %s", r.Name, fd.Type)
				}
				field.Method, field.Arg = "Field", a
			}
			rec.Fields = append(rec.Fields, field)
		}
		f.Records = append(f.Records, rec)
	}
	return f, nil
}

func builtinKind(xs string) ir.Kind {
	switch strings.TrimPrefix(xs, "xs:") {
	case "int":
		return ir.KindInt
	case "integer", "long":
		return ir.KindLong
	case "decimal":
		return ir.KindDecimal
	case "boolean":
		return ir.KindBool
	case "dateTime":
		return ir.KindDateTime
	}
	return ir.KindString
}

func builtinAdapter(k ir.Kind) string {
	switch k {
	case ir.KindInt:
		return "dsl.Int()"
	case ir.KindLong:
		return "dsl.Long()"
	case ir.KindDecimal:
		return "dsl.Decimal()"
	case ir.KindBool:
		return "dsl.Bool()"
	case ir.KindDateTime:
		return "dsl.DateTime()"
	}
	return "dsl.String()"
}

func baseCodec(k ir.Kind) string {
	return strings.Replace(builtinAdapter(k), "dsl.", "codec.", 1)
}

func facets(r codec.Restriction) []string {
	var out []string
	if r.Length != nil {
		out = append(out, fmt.Sprintf("Length: codec.IntPtr(%d)", *r.Length))
	}
	if r.MinLength != nil {
		out = append(out, fmt.Sprintf("MinLength: codec.IntPtr(%d)", *r.MinLength))
	}
	if r.MaxLength != nil {
		out = append(out, fmt.Sprintf("MaxLength: codec.IntPtr(%d)", *r.MaxLength))
	}
	if r.MinInclusive != "" {
		out = append(out, "MinInclusive: "+strconv.Quote(r.MinInclusive))
	}
	if r.MaxInclusive != "" {
		out = append(out, "MaxInclusive: "+strconv.Quote(r.MaxInclusive))
	}
	if len(r.Patterns) > 0 {
		out = append(out, "Patterns: "+stringSlice(r.Patterns))
	}
	if len(r.Enumeration) > 0 {
		out = append(out, "Enumeration: "+stringSlice(r.Enumeration))
	}
	return out
}

func stringSlice(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = strconv.Quote(s)
	}
	return "[]string{" + strings.Join(q, ", ") + "}"
}
