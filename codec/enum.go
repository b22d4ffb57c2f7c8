package codec

import (
	"strings"

	ku "github.com/reoring/kontrolluppgift"
)

// EnumCodec matches character data against a closed set of literals. Matching
// is exact and case-sensitive.
type EnumCodec[T ~string] struct {
	name   string
	values []T
	index  map[string]T
}

// Enum returns a codec accepting exactly the given literals.
func Enum[T ~string](name string, values ...T) *EnumCodec[T] {
	c := &EnumCodec[T]{name: name, values: append([]T(nil), values...), index: make(map[string]T, len(values))}
	for _, v := range values {
		c.index[string(v)] = v
	}
	return c
}

func (c *EnumCodec[T]) Name() string { return c.name }

// Values returns the accepted literals in declaration order.
func (c *EnumCodec[T]) Values() []T { return append([]T(nil), c.values...) }

// Contains reports whether v is one of the accepted literals.
func (c *EnumCodec[T]) Contains(v T) bool {
	_, ok := c.index[string(v)]
	return ok
}

func (c *EnumCodec[T]) Decode(text string) (T, error) {
	if v, ok := c.index[text]; ok {
		return v, nil
	}
	var zero T
	return zero, ku.UnexpectedToken("", "enumerated value", text)
}

func (c *EnumCodec[T]) Encode(v T) (string, error) {
	if !c.Contains(v) {
		return "", ku.UnexpectedToken("", "enumerated value", string(v))
	}
	return string(v), nil
}

func (c *EnumCodec[T]) String() string {
	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = string(v)
	}
	return c.name + "{" + strings.Join(parts, ", ") + "}"
}
