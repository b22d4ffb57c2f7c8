package codec

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Validated is a scalar that passed every facet of its restricted type. It
// can only be obtained from Restricted.New or Restricted.Decode; the zero
// value is not valid and is rejected on encode.
type Validated[T any] struct {
	v   T
	typ string
	ok  bool
}

// Value returns the underlying value.
func (v Validated[T]) Value() T { return v.v }

// Type returns the name of the restricted type that validated the value.
func (v Validated[T]) Type() string { return v.typ }

// IsValid reports whether the value was produced by a Restricted codec.
func (v Validated[T]) IsValid() bool { return v.ok }

func (v Validated[T]) String() string { return fmt.Sprint(v.v) }

// MarshalJSON renders the underlying value.
func (v Validated[T]) MarshalJSON() ([]byte, error) { return json.Marshal(v.v) }

// Unwrap returns the underlying value as any; used by generic record dumps.
func (v Validated[T]) Unwrap() any { return v.v }
