package codec

import (
	"testing"

	ku "github.com/reoring/kontrolluppgift"
)

type trafik string

func TestEnum_ExactMatch(t *testing.T) {
	c := Enum[trafik]("NarfartFjarrfart", "N", "F")
	v, err := c.Decode("F")
	if err != nil || v != "F" {
		t.Fatalf("decode: %v %v", v, err)
	}
	for _, in := range []string{"f", "NF", "", " N"} {
		_, err := c.Decode(in)
		iss, ok := ku.AsIssues(err)
		if !ok || iss[0].Code != ku.CodeUnexpectedToken {
			t.Fatalf("decode %q: %v", in, err)
		}
		if iss[0].Message != "expected enumerated value got: "+in {
			t.Fatalf("message: %q", iss[0].Message)
		}
	}
}

func TestEnum_EncodeRejectsUnknown(t *testing.T) {
	c := Enum[trafik]("NarfartFjarrfart", "N", "F")
	if s, err := c.Encode("N"); err != nil || s != "N" {
		t.Fatalf("encode: %q %v", s, err)
	}
	if _, err := c.Encode("X"); err == nil {
		t.Fatalf("expected error for unknown literal")
	}
}

func TestEnum_ValuesAndString(t *testing.T) {
	c := Enum[trafik]("NarfartFjarrfart", "N", "F")
	vs := c.Values()
	vs[0] = "mutated"
	if c.Values()[0] != "N" {
		t.Fatalf("Values must return a copy")
	}
	if c.String() != "NarfartFjarrfart{N, F}" {
		t.Fatalf("String: %q", c.String())
	}
}
