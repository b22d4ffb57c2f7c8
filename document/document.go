package document

import (
	"fmt"

	ku "github.com/reoring/kontrolluppgift"
	"github.com/reoring/kontrolluppgift/dsl"
)

// Document is a complete Kontrolluppgift file: one sender block, one shared
// block and the form entries in file order.
type Document struct {
	Sender  *dsl.RecordValue // Avsandare
	Shared  *dsl.RecordValue // Blankettgemensamt
	Entries []Entry
}

// Entry is one Blankett element. Number is the nummer attribute; it is
// carried as is and not checked against the entry's position.
type Entry struct {
	Number   int64
	CaseInfo *dsl.RecordValue // Arendeinformation
	Content  dsl.Variant
}

// Equal reports structural equality of two documents.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !d.Sender.Equal(o.Sender) || !d.Shared.Equal(o.Shared) || len(d.Entries) != len(o.Entries) {
		return false
	}
	for i := range d.Entries {
		a, b := d.Entries[i], o.Entries[i]
		if a.Number != b.Number || a.Content.Name != b.Content.Name {
			return false
		}
		if !a.CaseInfo.Equal(b.CaseInfo) || !a.Content.Record.Equal(b.Content.Record) {
			return false
		}
	}
	return true
}

// Validate checks the invariants encoding relies on against the given
// variant set: blocks present and of the right schema, and every entry
// carrying case information and a registered variant.
func (d *Document) Validate(vs *dsl.VariantSet) error {
	root := ku.RootPath().Elem(RootName)
	if err := checkBlock(d.Sender, Avsandare, root); err != nil {
		return err
	}
	if err := checkBlock(d.Shared, Blankettgemensamt, root); err != nil {
		return err
	}
	for i, e := range d.Entries {
		path := root.Elem(ElemEntry).Index(i)
		if err := checkBlock(e.CaseInfo, Arendeinformation, path); err != nil {
			return err
		}
		if e.Content.IsZero() {
			return ku.MissingElement(ElemContent, ElemEntry).Locate(path.String(), "", -1)
		}
		if _, err := vs.NewVariant(e.Content.Record); err != nil {
			iss, _ := ku.AsIssues(err)
			return iss.Locate(path.Elem(ElemContent).String(), "", -1)
		}
		if e.Content.Name != "" && e.Content.Name != e.Content.Record.Name() {
			return ku.InvalidType(ElemContent, e.Content.Name, e.Content.Record.Name()).Locate(path.Elem(ElemContent).String(), "", -1)
		}
	}
	return nil
}

func checkBlock(r *dsl.RecordValue, s *dsl.RecordSchema, parent ku.PathRef) error {
	path := parent.Elem(s.Name()).String()
	if r == nil {
		return ku.MissingElement(s.Name(), parent.Last()).Locate(path, "", -1)
	}
	if r.Schema() != s {
		return ku.InvalidType(s.Name(), s.Name(), r.Name()).Locate(path, "", -1)
	}
	return nil
}

// AsMap renders the document as nested maps keyed by element name, the form
// used by the JSON, YAML and Ion dumps.
func (d *Document) AsMap() map[string]any {
	entries := make([]any, len(d.Entries))
	for i, e := range d.Entries {
		m := map[string]any{AttrNumber: e.Number}
		if e.CaseInfo != nil {
			m[ElemCaseInfo] = e.CaseInfo.AsMap()
		}
		if !e.Content.IsZero() {
			m[ElemContent] = map[string]any{e.Content.Name: e.Content.Record.AsMap()}
		}
		entries[i] = m
	}
	out := map[string]any{ElemEntry: entries}
	if d.Sender != nil {
		out[ElemSender] = d.Sender.AsMap()
	}
	if d.Shared != nil {
		out[ElemShared] = d.Shared.AsMap()
	}
	return out
}

// String summarises the document for logs.
func (d *Document) String() string {
	names := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		names[i] = fmt.Sprintf("%d:%s", e.Number, e.Content.Name)
	}
	return fmt.Sprintf("Skatteverket%v", names)
}
