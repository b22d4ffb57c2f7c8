package kontrolluppgift

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds element paths (/Skatteverket/Blankett[2]/Arendeinformation)
// in a chain-safe way and creates Issues. The zero value is the document root.
type PathRef struct {
	parts []string
}

// RootPath returns the document root path.
func RootPath() PathRef { return PathRef{} }

// ParsePath splits a rendered path back into a PathRef.
func ParsePath(path string) PathRef {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return PathRef{parts: parts}
}

// Elem appends a child element name.
func (p PathRef) Elem(name string) PathRef {
	if name == "" {
		return p
	}
	return PathRef{parts: append(append([]string{}, p.parts...), name)}
}

// Index qualifies the last element with a zero-based position.
func (p PathRef) Index(i int) PathRef {
	if len(p.parts) == 0 {
		return p
	}
	parts := append([]string{}, p.parts...)
	parts[len(parts)-1] += "[" + strconv.Itoa(i) + "]"
	return PathRef{parts: parts}
}

// Last returns the last element name, without any index qualifier.
func (p PathRef) Last() string {
	if len(p.parts) == 0 {
		return ""
	}
	last := p.parts[len(p.parts)-1]
	if i := strings.IndexByte(last, '['); i >= 0 {
		return last[:i]
	}
	return last
}

func (p PathRef) String() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue builds an Issue located at p; kv are key/value pairs stored in Params.
func (p PathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.String(), Code: code, Message: msg, Offset: -1, Params: m}
}
