package xsdimport

import (
	"strings"
	"unicode"
)

// Ident rewrites a schema name into a Go identifier. A hyphen becomes the
// word "to" and other characters that cannot appear in an identifier become
// underscores. A name that does not start with a letter gets an "E" prefix.
func Ident(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '-':
			b.WriteString("to")
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s == "" {
		return "E"
	}
	if first := []rune(s)[0]; !unicode.IsLetter(first) {
		s = "E" + s
	}
	return s
}

// localName strips a namespace prefix such as "xs:" or "gm:".
func localName(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// builtin reports whether a qualified type name refers to the XML Schema
// namespace. Unprefixed names are looked up among ingested types first.
func builtin(qname string, xsPrefixes map[string]bool) bool {
	i := strings.IndexByte(qname, ':')
	if i < 0 {
		return false
	}
	return xsPrefixes[qname[:i]]
}
