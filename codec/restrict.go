package codec

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	ku "github.com/reoring/kontrolluppgift"
)

// Restriction lists the facets of a simple type restriction. Lengths are
// counted in characters. Numeric bounds are kept in lexical form and compared
// exactly. Several patterns are alternatives; a value must match one.
type Restriction struct {
	Length       *int     `json:"length,omitempty" yaml:"length,omitempty"`
	MinLength    *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength    *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinInclusive string   `json:"minInclusive,omitempty" yaml:"minInclusive,omitempty"`
	MaxInclusive string   `json:"maxInclusive,omitempty" yaml:"maxInclusive,omitempty"`
	Patterns     []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Enumeration  []string `json:"enumeration,omitempty" yaml:"enumeration,omitempty"`
}

// IsZero reports whether no facet is set.
func (r Restriction) IsZero() bool {
	return r.Length == nil && r.MinLength == nil && r.MaxLength == nil &&
		r.MinInclusive == "" && r.MaxInclusive == "" &&
		len(r.Patterns) == 0 && len(r.Enumeration) == 0
}

// Derive returns r narrowed by the facets set on child. Facets set on the
// child replace the inherited ones.
func (r Restriction) Derive(child Restriction) Restriction {
	out := r
	if child.Length != nil {
		out.Length = child.Length
	}
	if child.MinLength != nil {
		out.MinLength = child.MinLength
	}
	if child.MaxLength != nil {
		out.MaxLength = child.MaxLength
	}
	if child.MinInclusive != "" {
		out.MinInclusive = child.MinInclusive
	}
	if child.MaxInclusive != "" {
		out.MaxInclusive = child.MaxInclusive
	}
	if len(child.Patterns) > 0 {
		out.Patterns = append([]string(nil), child.Patterns...)
	}
	if len(child.Enumeration) > 0 {
		out.Enumeration = append([]string(nil), child.Enumeration...)
	}
	return out
}

// IntPtr is a helper for building restrictions in code.
func IntPtr(n int) *int { return &n }

// Restricted wraps a base codec with compiled facets. It implements
// ku.Codec[Validated[T]].
type Restricted[T any] struct {
	name     string
	base     ku.Codec[T]
	r        Restriction
	patterns []*regexp.Regexp
	min, max *big.Rat
	enum     map[string]struct{}
}

// Restrict compiles r over base. Facet values that cannot be compiled (a bad
// pattern, a non-numeric bound) are reported as plain errors.
func Restrict[T any](name string, base ku.Codec[T], r Restriction) (*Restricted[T], error) {
	c := &Restricted[T]{name: name, base: base, r: r}
	for _, p := range r.Patterns {
		re, err := compilePattern(p)
		if err != nil {
			return nil, fmt.Errorf("%s: pattern %q: %w", name, p, err)
		}
		c.patterns = append(c.patterns, re)
	}
	var err error
	if c.min, err = parseBound(r.MinInclusive); err != nil {
		return nil, fmt.Errorf("%s: minInclusive: %w", name, err)
	}
	if c.max, err = parseBound(r.MaxInclusive); err != nil {
		return nil, fmt.Errorf("%s: maxInclusive: %w", name, err)
	}
	if c.min != nil && c.max != nil && c.min.Cmp(c.max) > 0 {
		return nil, fmt.Errorf("%s: minInclusive %s exceeds maxInclusive %s", name, r.MinInclusive, r.MaxInclusive)
	}
	if len(r.Enumeration) > 0 {
		c.enum = make(map[string]struct{}, len(r.Enumeration))
		for _, e := range r.Enumeration {
			c.enum[e] = struct{}{}
		}
	}
	return c, nil
}

// MustRestrict is Restrict for package-level tables; it panics on error.
func MustRestrict[T any](name string, base ku.Codec[T], r Restriction) *Restricted[T] {
	c, err := Restrict(name, base, r)
	if err != nil {
		panic(err)
	}
	return c
}

// compilePattern anchors an XSD pattern; XSD patterns always match the whole
// value.
func compilePattern(p string) (*regexp.Regexp, error) {
	if strings.Contains(p, "-[") {
		return nil, fmt.Errorf("character class subtraction is not supported")
	}
	return regexp.Compile(`^(?:` + p + `)$`)
}

func parseBound(s string) (*big.Rat, error) {
	if s == "" {
		return nil, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return r, nil
}

func (c *Restricted[T]) Name() string { return c.name }

// Restriction returns the facets the codec was compiled from.
func (c *Restricted[T]) Restriction() Restriction { return c.r }

// Base returns the unrestricted codec.
func (c *Restricted[T]) Base() ku.Codec[T] { return c.base }

// Check validates lexical text against every facet.
func (c *Restricted[T]) Check(text string) error {
	r := c.r
	n := utf8.RuneCountInString(text)
	if r.Length != nil && n != *r.Length {
		return ku.ConstraintViolation("length", strconv.Itoa(*r.Length), text)
	}
	if r.MinLength != nil && n < *r.MinLength {
		return ku.ConstraintViolation("minLength", strconv.Itoa(*r.MinLength), text)
	}
	if r.MaxLength != nil && n > *r.MaxLength {
		return ku.ConstraintViolation("maxLength", strconv.Itoa(*r.MaxLength), text)
	}
	if len(c.patterns) > 0 {
		matched := false
		for _, re := range c.patterns {
			if re.MatchString(text) {
				matched = true
				break
			}
		}
		if !matched {
			return ku.ConstraintViolation("pattern", strings.Join(r.Patterns, " | "), text)
		}
	}
	if c.enum != nil {
		if _, ok := c.enum[text]; !ok {
			return ku.ConstraintViolation("enumeration", "{"+strings.Join(r.Enumeration, ", ")+"}", text)
		}
	}
	if c.min != nil || c.max != nil {
		v, ok := new(big.Rat).SetString(text)
		if !ok {
			facet, limit := "minInclusive", r.MinInclusive
			if c.min == nil {
				facet, limit = "maxInclusive", r.MaxInclusive
			}
			return ku.ConstraintViolation(facet, limit, text)
		}
		if c.min != nil && v.Cmp(c.min) < 0 {
			return ku.ConstraintViolation("minInclusive", r.MinInclusive, text)
		}
		if c.max != nil && v.Cmp(c.max) > 0 {
			return ku.ConstraintViolation("maxInclusive", r.MaxInclusive, text)
		}
	}
	return nil
}

// New validates v and wraps it. Invalid values fail with constraint_violation.
func (c *Restricted[T]) New(v T) (Validated[T], error) {
	text, err := c.base.Encode(v)
	if err != nil {
		return Validated[T]{}, err
	}
	if err := c.Check(text); err != nil {
		return Validated[T]{}, err
	}
	return Validated[T]{v: v, typ: c.name, ok: true}, nil
}

// MustNew is New for literals known to be valid; it panics on error.
func (c *Restricted[T]) MustNew(v T) Validated[T] {
	out, err := c.New(v)
	if err != nil {
		panic(err)
	}
	return out
}

func (c *Restricted[T]) Decode(text string) (Validated[T], error) {
	v, err := c.base.Decode(text)
	if err != nil {
		return Validated[T]{}, err
	}
	if err := c.Check(text); err != nil {
		return Validated[T]{}, err
	}
	return Validated[T]{v: v, typ: c.name, ok: true}, nil
}

func (c *Restricted[T]) Encode(v Validated[T]) (string, error) {
	if !v.ok {
		return "", ku.InvalidType("", c.name, "unvalidated value")
	}
	return c.base.Encode(v.v)
}

// Coerce turns v into a Validated value of this type. It accepts a Validated
// value of the same type as is, and validates a raw T or a Validated value of
// another type.
func (c *Restricted[T]) Coerce(v any) (Validated[T], error) {
	switch tv := v.(type) {
	case Validated[T]:
		if tv.ok && tv.typ == c.name {
			return tv, nil
		}
		if !tv.ok {
			return Validated[T]{}, ku.InvalidType("", c.name, "unvalidated value")
		}
		return c.New(tv.v)
	case T:
		return c.New(tv)
	}
	return Validated[T]{}, ku.InvalidType("", c.name, fmt.Sprintf("%T", v))
}
