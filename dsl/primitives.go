package dsl

import "github.com/reoring/kontrolluppgift/codec"

// Bool is the KryssTyp adapter ("0"/"1").
func Bool() ScalarAdapter { return Scalar(codec.Bool()) }

// Int is the adapter for 32-bit amounts; values are int32.
func Int() ScalarAdapter { return Scalar(codec.Int()) }

// Long is the adapter for 64-bit integers; values are int64.
func Long() ScalarAdapter { return Scalar(codec.Long()) }

// Float is the adapter for single precision fractions; values are float32.
func Float() ScalarAdapter { return Scalar(codec.Float()) }

// Decimal is the adapter for xs:decimal; values are float64.
func Decimal() ScalarAdapter { return Scalar(codec.Decimal()) }

// String is the free text adapter.
func String() ScalarAdapter { return Scalar(codec.String()) }

// DateTime is the xs:dateTime adapter; values are time.Time.
func DateTime() ScalarAdapter { return Scalar(codec.DateTime()) }

// IdentityNumber is the IdentitetsbeteckningForPerson adapter; values are
// codec.Validated[string].
func IdentityNumber() ScalarAdapter { return Scalar[codec.Validated[string]](codec.IdentityNumber()) }

// Enum adapts a closed set codec.
func Enum[T ~string](c *codec.EnumCodec[T]) ScalarAdapter { return Scalar[T](c) }

// Restricted adapts a constrained scalar codec; values are codec.Validated[T].
func Restricted[T any](c *codec.Restricted[T]) ScalarAdapter {
	return Scalar[codec.Validated[T]](c)
}
