package codec

import (
	"errors"
	"strconv"
	"testing"
	"time"

	ku "github.com/reoring/kontrolluppgift"
)

func TestBool_Literals(t *testing.T) {
	c := Bool()
	for in, want := range map[string]bool{"1": true, "0": false} {
		got, err := c.Decode(in)
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("decode %q = %v, want %v", in, got, want)
		}
		out, _ := c.Encode(got)
		if out != in {
			t.Fatalf("encode %v = %q, want %q", got, out, in)
		}
	}
}

func TestBool_RejectsOtherTokens(t *testing.T) {
	c := Bool()
	for _, in := range []string{"true", "false", "2", "", " 1"} {
		_, err := c.Decode(in)
		if !ku.HasCode(err, ku.CodeUnexpectedToken) {
			t.Fatalf("decode %q: want unexpected_token, got %v", in, err)
		}
	}
	_, err := c.Decode("true")
	iss, _ := ku.AsIssues(err)
	if iss[0].Message != "expected KryssTyp, found: true" {
		t.Fatalf("message: %q", iss[0].Message)
	}
}

func TestInt_DecodeEncode(t *testing.T) {
	c := Int()
	v, err := c.Decode("-1200")
	if err != nil || v != -1200 {
		t.Fatalf("decode: %v %v", v, err)
	}
	s, _ := c.Encode(31000)
	if s != "31000" {
		t.Fatalf("encode: %q", s)
	}
}

func TestInt_OutOfRangeAndGarbage(t *testing.T) {
	c := Int()
	for _, in := range []string{"abc", "1.5", "", "2147483648"} {
		_, err := c.Decode(in)
		iss, ok := ku.AsIssues(err)
		if !ok || iss[0].Code != ku.CodeUnexpectedToken {
			t.Fatalf("decode %q: want unexpected_token, got %v", in, err)
		}
		if iss[0].Message != "expected number got: "+in {
			t.Fatalf("message: %q", iss[0].Message)
		}
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Fatalf("cause not reachable through errors.As: %v", err)
		}
	}
}

func TestLong_Wide(t *testing.T) {
	v, err := Long().Decode("9007199254740993")
	if err != nil || v != 9007199254740993 {
		t.Fatalf("decode: %v %v", v, err)
	}
}

func TestFloat_DecodeEncode(t *testing.T) {
	c := Float()
	v, err := c.Decode("12.5")
	if err != nil || v != 12.5 {
		t.Fatalf("decode: %v %v", v, err)
	}
	s, _ := c.Encode(0.25)
	if s != "0.25" {
		t.Fatalf("encode: %q", s)
	}
	for _, in := range []string{"NaN", "Inf", "x"} {
		_, err := c.Decode(in)
		iss, ok := ku.AsIssues(err)
		if !ok || iss[0].Message != "expected fraction got: "+in {
			t.Fatalf("decode %q: %v", in, err)
		}
	}
}

func TestDecimal_DecodeEncode(t *testing.T) {
	c := Decimal()
	v, err := c.Decode("1234.75")
	if err != nil || v != 1234.75 {
		t.Fatalf("decode: %v %v", v, err)
	}
	if s, _ := c.Encode(v); s != "1234.75" {
		t.Fatalf("encode: %q", s)
	}
}

func TestString_KeepsWhitespace(t *testing.T) {
	v, _ := String().Decode("  Gatan 1 ")
	if v != "  Gatan 1 " {
		t.Fatalf("decode: %q", v)
	}
}

func TestDateTime_ZonedRoundTrip(t *testing.T) {
	c := DateTime()
	in := "2022-06-01T10:11:12Z"
	got, err := c.Decode(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(time.Date(2022, 6, 1, 10, 11, 12, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}
	out, _ := c.Encode(got)
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestDateTime_ZonelessRoundTrip(t *testing.T) {
	c := DateTime()
	for _, in := range []string{"2022-01-31T12:00:00", "2022-01-31T12:00:00.5"} {
		got, err := c.Decode(in)
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		out, _ := c.Encode(got)
		if out != in {
			t.Fatalf("roundtrip mismatch: %s != %s", out, in)
		}
	}
}

func TestDateTime_Invalid(t *testing.T) {
	_, err := DateTime().Decode("2022-13-01")
	if !ku.HasCode(err, ku.CodeUnexpectedToken) {
		t.Fatalf("want unexpected_token, got %v", err)
	}
}
