package codec

import (
	"math"
	"strconv"

	ku "github.com/reoring/kontrolluppgift"
)

// Bool returns the KryssTyp codec: "1" is true and "0" is false. Nothing
// else is accepted, including "true" and "false".
func Bool() ku.Codec[bool] { return boolCodec{} }

type boolCodec struct{}

func (boolCodec) Name() string { return "KryssTyp" }

func (boolCodec) Decode(text string) (bool, error) {
	switch text {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, ku.UnexpectedToken("bool", "KryssTyp", text)
}

func (boolCodec) Encode(v bool) (string, error) {
	if v {
		return "1", nil
	}
	return "0", nil
}

// Int returns the codec for 32-bit integer amounts (Belopp and friends).
func Int() ku.Codec[int32] { return intCodec{} }

type intCodec struct{}

func (intCodec) Name() string { return "number" }

func (intCodec) Decode(text string) (int32, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		iss := ku.UnexpectedToken("", "number", text)
		iss[0].Cause = err
		return 0, iss
	}
	return int32(n), nil
}

func (intCodec) Encode(v int32) (string, error) { return strconv.FormatInt(int64(v), 10), nil }

// Long returns the codec for 64-bit integers (xs:long, xs:integer).
func Long() ku.Codec[int64] { return longCodec{} }

type longCodec struct{}

func (longCodec) Name() string { return "number" }

func (longCodec) Decode(text string) (int64, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		iss := ku.UnexpectedToken("", "number", text)
		iss[0].Cause = err
		return 0, iss
	}
	return n, nil
}

func (longCodec) Encode(v int64) (string, error) { return strconv.FormatInt(v, 10), nil }

// Float returns the codec for single precision fractions (AndelAvDepan).
func Float() ku.Codec[float32] { return floatCodec{} }

type floatCodec struct{}

func (floatCodec) Name() string { return "fraction" }

func (floatCodec) Decode(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		iss := ku.UnexpectedToken("", "fraction", text)
		iss[0].Cause = err
		return 0, iss
	}
	return float32(f), nil
}

func (floatCodec) Encode(v float32) (string, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return "", ku.UnexpectedToken("", "fraction", strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
}

// Decimal returns the codec for xs:decimal values held as float64.
func Decimal() ku.Codec[float64] { return decimalCodec{} }

type decimalCodec struct{}

func (decimalCodec) Name() string { return "decimal" }

func (decimalCodec) Decode(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		iss := ku.UnexpectedToken("", "decimal", text)
		iss[0].Cause = err
		return 0, iss
	}
	return f, nil
}

func (decimalCodec) Encode(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ku.UnexpectedToken("", "decimal", strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}
