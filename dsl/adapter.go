package dsl

import (
	"fmt"
	"reflect"

	ku "github.com/reoring/kontrolluppgift"
)

// ScalarAdapter adapts a typed ku.Codec[T] to the any-typed field slots of a
// RecordSchema. It keeps the original codec to support catalog export and
// introspection.
type ScalarAdapter struct {
	name   string
	goType string
	decode func(string) (any, error)
	encode func(any) (string, error)
	coerce func(any) (any, error)
	orig   any
}

// coercer is implemented by codecs that can turn loosely typed input into
// their value type (restricted codecs accept raw base values).
type coercer[T any] interface {
	Coerce(any) (T, error)
}

// Scalar wraps c for use in Field builders.
func Scalar[T any](c ku.Codec[T]) ScalarAdapter {
	name := c.Name()
	ad := ScalarAdapter{
		name:   name,
		goType: reflect.TypeFor[T]().String(),
		decode: func(text string) (any, error) {
			v, err := c.Decode(text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		encode: func(v any) (string, error) {
			tv, ok := v.(T)
			if !ok {
				return "", ku.InvalidType("", name, fmt.Sprintf("%T", v))
			}
			return c.Encode(tv)
		},
		orig: c,
	}
	ad.coerce = func(v any) (any, error) {
		tv, ok := v.(T)
		if !ok {
			return nil, ku.InvalidType("", name, fmt.Sprintf("%T", v))
		}
		// encoding validates closed sets and non-finite numbers
		if _, err := c.Encode(tv); err != nil {
			return nil, err
		}
		return tv, nil
	}
	if co, ok := any(c).(coercer[T]); ok {
		ad.coerce = func(v any) (any, error) {
			tv, err := co.Coerce(v)
			if err != nil {
				return nil, err
			}
			return tv, nil
		}
	}
	return ad
}

// Name returns the codec name (KryssTyp, number, a restricted type name, ...).
func (ad ScalarAdapter) Name() string { return ad.name }

// GoType returns the Go type of decoded values.
func (ad ScalarAdapter) GoType() string { return ad.goType }

// Orig returns the wrapped codec.
func (ad ScalarAdapter) Orig() any { return ad.orig }

// IsZero reports whether the adapter wraps no codec.
func (ad ScalarAdapter) IsZero() bool { return ad.decode == nil }

// Decode converts character data into a field value.
func (ad ScalarAdapter) Decode(text string) (any, error) { return ad.decode(text) }

// Encode renders a field value as character data.
func (ad ScalarAdapter) Encode(v any) (string, error) { return ad.encode(v) }

// Coerce checks that v can be stored in a field using this adapter and
// returns the value to store.
func (ad ScalarAdapter) Coerce(v any) (any, error) { return ad.coerce(v) }

// Equal compares two field values by their wire form.
func (ad ScalarAdapter) Equal(a, b any) bool {
	sa, err := ad.encode(a)
	if err != nil {
		return false
	}
	sb, err := ad.encode(b)
	if err != nil {
		return false
	}
	return sa == sb
}
