package i18n

import "testing"

func TestTranslator_DefaultAndSwedish(t *testing.T) {
	data := map[string]string{"missing": "Inkomstar", "reading": "KU10"}
	if msg := T("missing_element", data); msg != "Missing element Inkomstar, while reading KU10" {
		t.Fatalf("unexpected en message: %q", msg)
	}

	SetLanguage("sv")
	defer SetLanguage("en")
	if msg := T("missing_element", data); msg != "Element Inkomstar saknas vid läsning av KU10" {
		t.Fatalf("unexpected sv message: %q", msg)
	}
}

func TestTranslator_SubKeyFallback(t *testing.T) {
	got := T("unexpected_token.number", map[string]string{"expected": "number", "got": "abc"})
	if got != "expected number got: abc" {
		t.Fatalf("fallback message = %q", got)
	}
	if got := T("unexpected_token.bool", map[string]string{"got": "true"}); got != "expected KryssTyp, found: true" {
		t.Fatalf("bool message = %q", got)
	}
}

func TestTranslator_UnknownCodeAndLanguage(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown code should echo, got %q", got)
	}
	SetLanguage("xx")
	if got := T("missing_element", map[string]string{"missing": "a", "reading": "b"}); got != "Missing element a, while reading b" {
		t.Fatalf("unknown language should fall back to en, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if got := T("parse_error", nil); got != "X:parse_error" {
		t.Fatalf("custom translator not used: %q", got)
	}
}
