// Package xsdimport ingests the tax authority's XML Schema documents into the
// record schema model. Simple types become restricted value codecs, elements
// carrying a fixed faltkod become coded leaf fields and complex types become
// record schemas, so the hand written tables in package forms can be checked
// against the published schema.
package xsdimport

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	ku "github.com/reoring/kontrolluppgift"
	"github.com/reoring/kontrolluppgift/codec"
	"github.com/reoring/kontrolluppgift/internal/ir"
)

// XSDNamespace is the XML Schema namespace URI.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// Import ingests a single schema document.
func Import(data []byte, opts Options) (*Catalog, Diag, error) {
	return ImportAll(opts, data)
}

// ImportFiles reads and ingests several schema documents as one set, for
// example a component schema together with the common type schema it
// refers to.
func ImportFiles(opts Options, paths ...string) (*Catalog, Diag, error) {
	docs := make([][]byte, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, &simpleDiag{}, fmt.Errorf("xsdimport: %w", err)
		}
		docs = append(docs, b)
	}
	return ImportAll(opts, docs...)
}

// ImportAll ingests several schema documents as one set. Declarations are
// shared between documents. Every problem found is reported in a single
// ingest_error issue whose Cause aggregates the individual errors.
func ImportAll(opts Options, docs ...[]byte) (*Catalog, Diag, error) {
	log := opts.log()
	d := &simpleDiag{log: log}
	if len(docs) == 0 {
		return nil, d, ku.IngestError(errors.New("no schema documents"))
	}
	set := newSchemaSet()
	for i, data := range docs {
		if err := set.load(data); err != nil {
			return nil, d, ku.IngestError(fmt.Errorf("document %d: %w", i, err))
		}
	}
	p := &planner{set: set, opts: opts, d: d, log: log}
	cat, err := p.plan()
	if err != nil {
		return nil, d, ku.IngestError(err)
	}
	c, err := newCatalog(cat)
	if err != nil {
		return nil, d, ku.IngestError(err)
	}
	log.Debug("xsd imported",
		zap.Int("scalars", len(cat.Scalars)),
		zap.Int("records", len(cat.Records)),
		zap.Int("warnings", len(d.ws)))
	return c, d, nil
}

// schemaSet indexes the top-level declarations of all loaded documents.
type schemaSet struct {
	xs       map[string]bool
	simple   map[string]*etree.Element
	complex  map[string]*etree.Element
	elements map[string]*etree.Element
	// declaration order, kept for deterministic output
	simpleOrder, complexOrder, elementOrder []string
}

func newSchemaSet() *schemaSet {
	return &schemaSet{
		xs:       map[string]bool{},
		simple:   map[string]*etree.Element{},
		complex:  map[string]*etree.Element{},
		elements: map[string]*etree.Element{},
	}
}

func (s *schemaSet) load(data []byte) error {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{CharsetReader: charset.NewReaderLabel}
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "schema" {
		return errors.New("root element is not a schema")
	}
	found := false
	for _, a := range root.Attr {
		if a.Space == "xmlns" && a.Value == XSDNamespace {
			s.xs[a.Key] = true
			found = true
		}
	}
	if !found {
		s.xs["xs"], s.xs["xsd"] = true, true
	}
	var err error
	for _, el := range root.ChildElements() {
		name := el.SelectAttrValue("name", "")
		switch el.Tag {
		case "simpleType":
			err = multierr.Append(err, s.add(s.simple, &s.simpleOrder, "simple type", name, el))
		case "complexType":
			err = multierr.Append(err, s.add(s.complex, &s.complexOrder, "complex type", name, el))
		case "element":
			err = multierr.Append(err, s.add(s.elements, &s.elementOrder, "element", name, el))
		}
	}
	return err
}

func (s *schemaSet) add(m map[string]*etree.Element, order *[]string, what, name string, el *etree.Element) error {
	if name == "" {
		return fmt.Errorf("%s without a name", what)
	}
	if _, dup := m[name]; dup {
		return fmt.Errorf("%s %s declared twice", what, name)
	}
	m[name] = el
	*order = append(*order, name)
	return nil
}

var builtinKinds = map[string]ir.Kind{
	"string":           ir.KindString,
	"normalizedString": ir.KindString,
	"token":            ir.KindString,
	"date":             ir.KindString,
	"gYear":            ir.KindString,
	"int":              ir.KindInt,
	"integer":          ir.KindLong,
	"long":             ir.KindLong,
	"decimal":          ir.KindDecimal,
	"boolean":          ir.KindBool,
	"dateTime":         ir.KindDateTime,
}

// errSkipped marks a simple type that is not a restriction (list, union).
var errSkipped = errors.New("not a restriction")

// leaf is a coded element type: simple content plus a fixed faltkod.
type leaf struct {
	typ  string
	code string
}

type planner struct {
	set  *schemaSet
	opts Options
	d    *simpleDiag
	log  *zap.Logger
	err  error

	scalars   map[string]*ir.SimpleType
	failed    map[string]error
	resolving map[string]bool
	records   map[string]*ir.Record
	building  map[string]bool
	typed     map[string]bool
	recOrder  []string
	leaves    map[*etree.Element]leaf
}

func (p *planner) plan() (*ir.Catalog, error) {
	p.scalars = map[string]*ir.SimpleType{}
	p.failed = map[string]error{}
	p.resolving = map[string]bool{}
	p.records = map[string]*ir.Record{}
	p.building = map[string]bool{}
	p.typed = map[string]bool{}
	p.leaves = map[*etree.Element]leaf{}

	for _, name := range p.set.simpleOrder {
		if _, err := p.simpleType(name); err != nil && !errors.Is(err, errSkipped) {
			p.err = multierr.Append(p.err, err)
		}
	}
	for _, name := range p.set.elementOrder {
		if _, err := p.elementField(name, p.set.elements[name]); err != nil {
			p.err = multierr.Append(p.err, err)
		}
	}
	for _, name := range p.set.complexOrder {
		ct := p.set.complex[name]
		if p.typed[name] || simpleContent(ct) != nil {
			continue
		}
		if _, taken := p.records[name]; taken {
			p.d.warnf("complex type %s is not bound to an element and its name is taken", name)
			continue
		}
		p.log.Debug("complex type not bound to an element", zap.String("type", name))
		if _, err := p.record(name, name, ct); err != nil {
			p.err = multierr.Append(p.err, err)
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	cat := &ir.Catalog{}
	for _, name := range p.set.simpleOrder {
		if st, ok := p.scalars[name]; ok {
			cat.Scalars = append(cat.Scalars, *st)
		}
	}
	for _, name := range p.recOrder {
		cat.Records = append(cat.Records, *p.records[name])
	}
	return cat, nil
}

// simpleType resolves a named simple type, following restriction bases
// through other named simple types.
func (p *planner) simpleType(name string) (*ir.SimpleType, error) {
	if st, ok := p.scalars[name]; ok {
		return st, nil
	}
	if err, ok := p.failed[name]; ok {
		return nil, err
	}
	st, err := p.resolveSimple(name)
	if err != nil {
		p.failed[name] = err
		return nil, err
	}
	p.scalars[name] = st
	return st, nil
}

func (p *planner) resolveSimple(name string) (*ir.SimpleType, error) {
	el, ok := p.set.simple[name]
	if !ok {
		return nil, fmt.Errorf("unknown simple type %s", name)
	}
	if p.resolving[name] {
		return nil, fmt.Errorf("simple type %s derives from itself", name)
	}
	p.resolving[name] = true
	defer delete(p.resolving, name)

	rs := el.SelectElement("restriction")
	if rs == nil {
		p.d.warnf("simple type %s is not a restriction and was skipped", name)
		p.log.Debug("simple type skipped", zap.String("type", name))
		return nil, errSkipped
	}
	base := rs.SelectAttrValue("base", "")
	if base == "" {
		return nil, fmt.Errorf("simple type %s: restriction without base", name)
	}
	facets, enum, err := p.facets(name, rs)
	if err != nil {
		return nil, err
	}
	st := &ir.SimpleType{Name: name, Ident: Ident(name), Base: base, Facets: facets, Enum: enum}
	if builtin(base, p.set.xs) {
		kind, ok := builtinKinds[localName(base)]
		if !ok {
			return nil, fmt.Errorf("simple type %s: unsupported base type %s", name, base)
		}
		st.Kind = kind
	} else {
		parent, err := p.simpleType(localName(base))
		if err != nil {
			return nil, fmt.Errorf("simple type %s: base: %w", name, err)
		}
		st.Kind = parent.Kind
		st.Facets = parent.Facets.Derive(facets)
		if len(st.Enum) == 0 {
			st.Enum = append([]ir.EnumValue(nil), parent.Enum...)
		}
	}
	return st, nil
}

func (p *planner) facets(name string, rs *etree.Element) (f codec.Restriction, enum []ir.EnumValue, err error) {
	for _, c := range rs.ChildElements() {
		v := c.SelectAttrValue("value", "")
		switch c.Tag {
		case "length", "minLength", "maxLength":
			n, perr := strconv.Atoi(v)
			if perr != nil || n < 0 {
				return f, nil, fmt.Errorf("simple type %s: %s %q is not a length", name, c.Tag, v)
			}
			switch c.Tag {
			case "length":
				f.Length = &n
			case "minLength":
				f.MinLength = &n
			default:
				f.MaxLength = &n
			}
		case "minInclusive":
			f.MinInclusive = v
		case "maxInclusive":
			f.MaxInclusive = v
		case "pattern":
			f.Patterns = append(f.Patterns, v)
		case "enumeration":
			f.Enumeration = append(f.Enumeration, v)
			enum = append(enum, ir.EnumValue{Value: v, Ident: Ident(v), Doc: documentation(c)})
		case "annotation":
		default:
			p.d.warnf("simple type %s: facet %s ignored", name, c.Tag)
		}
	}
	return f, enum, nil
}

func documentation(el *etree.Element) string {
	an := el.SelectElement("annotation")
	if an == nil {
		return ""
	}
	var parts []string
	for _, d := range an.SelectElements("documentation") {
		if t := strings.TrimSpace(d.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func simpleContent(ct *etree.Element) *etree.Element {
	if ct == nil {
		return nil
	}
	return ct.SelectElement("simpleContent")
}

// elementField resolves an element declaration into the field it
// contributes to a record.
func (p *planner) elementField(name string, el *etree.Element) (ir.Field, error) {
	f := ir.Field{Name: name}
	if ct := el.SelectElement("complexType"); ct != nil {
		if sc := simpleContent(ct); sc != nil {
			lf, err := p.leaf(name, ct)
			if err != nil {
				return f, err
			}
			f.Type, f.Code = lf.typ, lf.code
			return f, nil
		}
		if _, err := p.record(name, "", ct); err != nil {
			return f, err
		}
		f.Record = name
		return f, nil
	}
	if el.SelectElement("simpleType") != nil {
		return f, fmt.Errorf("element %s: anonymous simple types are not supported", name)
	}
	t := el.SelectAttrValue("type", "")
	if t == "" {
		return f, fmt.Errorf("element %s has no type", name)
	}
	return p.typedField(name, t)
}

func (p *planner) typedField(name, qtype string) (ir.Field, error) {
	f := ir.Field{Name: name}
	typ, err := p.scalarRef(qtype)
	if err == nil {
		f.Type = typ
		return f, nil
	}
	local := localName(qtype)
	ct, ok := p.set.complex[local]
	if !ok || builtin(qtype, p.set.xs) {
		return f, fmt.Errorf("element %s: %w", name, err)
	}
	if simpleContent(ct) != nil {
		lf, err := p.leaf(name, ct)
		if err != nil {
			return f, err
		}
		f.Type, f.Code = lf.typ, lf.code
		return f, nil
	}
	if _, err := p.record(name, local, ct); err != nil {
		return f, err
	}
	f.Record = name
	return f, nil
}

// scalarRef resolves a type reference to a scalar type name: a built-in
// ("xs:int") or an ingested simple type.
func (p *planner) scalarRef(qtype string) (string, error) {
	local := localName(qtype)
	if builtin(qtype, p.set.xs) {
		if _, ok := builtinKinds[local]; !ok {
			return "", fmt.Errorf("unsupported base type %s", qtype)
		}
		return "xs:" + local, nil
	}
	if _, ok := p.set.simple[local]; !ok {
		return "", fmt.Errorf("unknown type %s", qtype)
	}
	if _, err := p.simpleType(local); err != nil {
		if errors.Is(err, errSkipped) {
			p.d.warnf("type %s is not a restriction; values are read as strings", local)
			return "xs:string", nil
		}
		return "", err
	}
	return local, nil
}

// leaf resolves simple content with a fixed faltkod attribute.
func (p *planner) leaf(name string, ct *etree.Element) (leaf, error) {
	if lf, ok := p.leaves[ct]; ok {
		return lf, nil
	}
	sc := simpleContent(ct)
	ext := sc.SelectElement("extension")
	if ext == nil {
		ext = sc.SelectElement("restriction")
	}
	if ext == nil {
		return leaf{}, fmt.Errorf("element %s: simple content without extension", name)
	}
	typ, err := p.scalarRef(ext.SelectAttrValue("base", ""))
	if err != nil {
		return leaf{}, fmt.Errorf("element %s: %w", name, err)
	}
	lf := leaf{typ: typ}
	for _, a := range ext.SelectElements("attribute") {
		if a.SelectAttrValue("name", "") != "faltkod" {
			p.d.warnf("element %s: attribute %s ignored", name, a.SelectAttrValue("name", a.SelectAttrValue("ref", "")))
			continue
		}
		lf.code = a.SelectAttrValue("fixed", a.SelectAttrValue("default", ""))
		if lf.code == "" {
			p.d.warnf("element %s: faltkod without a fixed value", name)
		}
	}
	p.leaves[ct] = lf
	return lf, nil
}

// record plans the record bound to element name from complex type ct.
func (p *planner) record(name, typeName string, ct *etree.Element) (*ir.Record, error) {
	if r, ok := p.records[name]; ok {
		if r.TypeName != typeName {
			return nil, fmt.Errorf("element %s bound to types %q and %q", name, r.TypeName, typeName)
		}
		return r, nil
	}
	if p.building[name] {
		return nil, fmt.Errorf("record %s contains itself", name)
	}
	p.building[name] = true
	defer delete(p.building, name)

	if ct.SelectElement("complexContent") != nil {
		return nil, fmt.Errorf("record %s: complex content derivation is not supported", name)
	}
	if len(ct.SelectElements("attribute")) > 0 {
		p.d.warnf("record %s: attributes ignored", name)
	}
	r := &ir.Record{Name: name, Ident: Ident(name), TypeName: typeName}
	var err error
	for _, g := range ct.ChildElements() {
		switch g.Tag {
		case "all", "sequence":
			err = multierr.Append(err, p.group(r, g, false))
		case "choice":
			err = multierr.Append(err, p.group(r, g, true))
		}
	}
	if err != nil {
		return nil, err
	}
	p.records[name] = r
	p.recOrder = append(p.recOrder, name)
	if typeName != "" {
		p.typed[typeName] = true
	}
	return r, nil
}

// group appends the children of a model group to r. Children of a choice
// are all optional.
func (p *planner) group(r *ir.Record, g *etree.Element, optional bool) error {
	var err error
	for _, c := range g.ChildElements() {
		switch c.Tag {
		case "sequence", "all":
			err = multierr.Append(err, p.group(r, c, optional))
			continue
		case "choice":
			err = multierr.Append(err, p.group(r, c, true))
			continue
		case "element":
		default:
			continue
		}
		if e := p.checkOccurs(r.Name, c); e != nil {
			err = multierr.Append(err, e)
			continue
		}
		var f ir.Field
		var ferr error
		if ref := c.SelectAttrValue("ref", ""); ref != "" {
			target, ok := p.set.elements[localName(ref)]
			if !ok {
				err = multierr.Append(err, fmt.Errorf("record %s: unresolved reference %s", r.Name, ref))
				continue
			}
			f, ferr = p.elementField(localName(ref), target)
		} else {
			f, ferr = p.elementField(c.SelectAttrValue("name", ""), c)
		}
		if ferr != nil {
			err = multierr.Append(err, fmt.Errorf("record %s: %w", r.Name, ferr))
			continue
		}
		f.Required = !optional && c.SelectAttrValue("minOccurs", "1") != "0"
		r.Fields = append(r.Fields, f)
	}
	return err
}

func (p *planner) checkOccurs(record string, c *etree.Element) error {
	max := c.SelectAttrValue("maxOccurs", "1")
	if max == "1" || max == "0" {
		return nil
	}
	name := c.SelectAttrValue("name", c.SelectAttrValue("ref", ""))
	if n, err := strconv.Atoi(max); err != nil && max != "unbounded" || err == nil && n < 0 {
		return fmt.Errorf("record %s: element %s: invalid maxOccurs %q", record, name, max)
	}
	if p.opts.StrictOccurs {
		return fmt.Errorf("record %s: element %s repeats (maxOccurs=%s)", record, name, max)
	}
	p.d.warnf("record %s: element %s repeats (maxOccurs=%s); only one occurrence is modelled", record, name, max)
	return nil
}
