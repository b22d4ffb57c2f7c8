package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "missing"). Keys may carry a sub key after a dot
// ("unexpected_token.faltkod") to select a more specific wording.
type Translator interface {
	Message(code string, data map[string]string) string
}

var dictionaries = map[string]map[string]string{
	"en": {
		"unexpected_element":         "Unexpected element {element}, while reading {reading}",
		"missing_element":            "Missing element {missing}, while reading {reading}",
		"unexpected_token":           "expected {expected} got: {got}",
		"unexpected_token.faltkod":   "Unexpected faltkod on {element}, expected: {expected}, got: {got}",
		"unexpected_token.bool":      "expected KryssTyp, found: {got}",
		"unexpected_token.attribute": "attribute {element} expected {expected} got: {got}",
		"unexpected_eof":             "Unexpected end of input, while reading {reading}",
		"constraint_violation":       "value {got} violates {facet} {expected}",
		"ingest_error":               "invalid schema: {detail}",
		"duplicate_element":          "element {element} occurs more than once, while reading {reading}",
		"invalid_type":               "invalid value for {element}: expected {expected}, got {got}",
		"parse_error":                "malformed XML: {detail}",
		"max_depth":                  "maximum nesting depth exceeded: {detail}",
	},
	"sv": {
		"unexpected_element":         "Oväntat element {element} vid läsning av {reading}",
		"missing_element":            "Element {missing} saknas vid läsning av {reading}",
		"unexpected_token":           "förväntade {expected} men fick: {got}",
		"unexpected_token.faltkod":   "Oväntad faltkod på {element}, förväntade: {expected}, fick: {got}",
		"unexpected_token.bool":      "förväntade KryssTyp, fick: {got}",
		"unexpected_token.attribute": "attributet {element} förväntade {expected} men fick: {got}",
		"unexpected_eof":             "Oväntat slut på indata vid läsning av {reading}",
		"constraint_violation":       "värdet {got} bryter mot {facet} {expected}",
		"ingest_error":               "ogiltigt schema: {detail}",
		"duplicate_element":          "elementet {element} förekommer mer än en gång i {reading}",
		"invalid_type":               "ogiltigt värde för {element}: förväntade {expected}, fick {got}",
		"parse_error":                "felaktig XML: {detail}",
		"max_depth":                  "maximalt nästlingsdjup överskridet: {detail}",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict := dictionaries[t.lang]
	tmpl, ok := dict[code]
	if !ok {
		// fall back from "code.sub" to "code"
		if i := strings.IndexByte(code, '.'); i > 0 {
			tmpl, ok = dict[code[:i]]
		}
	}
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"sv").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
