package kontrolluppgift_test

import (
	"bytes"
	"io"
	"testing"

	ku "github.com/reoring/kontrolluppgift"
)

type namedDriver struct {
	name string
	ku.XMLDriver
}

func (d namedDriver) Name() string { return d.name }

func TestXMLDriver_Registry(t *testing.T) {
	def := ku.CurrentXMLDriver()
	defer ku.UseDefaultXMLDriver()

	ku.RegisterXMLDriver(namedDriver{name: "registered", XMLDriver: def})
	if ku.CurrentXMLDriver().Name() != def.Name() {
		t.Fatalf("RegisterXMLDriver must not switch the current driver")
	}
	if _, ok := ku.DriverByName("registered"); !ok {
		t.Fatalf("registered driver not found")
	}

	ku.SetXMLDriver(namedDriver{name: "custom", XMLDriver: def})
	if ku.CurrentXMLDriver().Name() != "custom" {
		t.Fatalf("SetXMLDriver did not switch: %s", ku.CurrentXMLDriver().Name())
	}
	ku.SetXMLDriver(nil)
	if ku.CurrentXMLDriver().Name() != "custom" {
		t.Fatalf("nil driver must be ignored")
	}
	ku.UseDefaultXMLDriver()
	if ku.CurrentXMLDriver().Name() != "encoding/xml" {
		t.Fatalf("default driver: %s", ku.CurrentXMLDriver().Name())
	}
	names := ku.DriverNames()
	if len(names) < 3 {
		t.Fatalf("driver names: %v", names)
	}
}

func TestXMLBytes_TokensAndEOF(t *testing.T) {
	src := ku.XMLBytes([]byte(`<?xml version="1.0"?><!-- c --><a x="1">t</a>`))
	var kinds []ku.TokenKind
	for {
		tok, err := src.NextToken()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == ku.TokenEOF {
			break
		}
	}
	want := []ku.TokenKind{ku.TokenStart, ku.TokenText, ku.TokenEnd, ku.TokenEOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds: %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds: %v", kinds)
		}
	}
	tok, _ := src.NextToken()
	if tok.Kind != ku.TokenEOF {
		t.Fatalf("EOF must repeat")
	}
}

func TestEnforceSource_MaxDepth(t *testing.T) {
	var sunk []ku.Issue
	opt := ku.DefaultParseOpt()
	opt.MaxDepth = 2
	opt.IssueSink = func(it ku.Issue) { sunk = append(sunk, it) }
	src := ku.EnforceSource(ku.XMLBytes([]byte(`<a><b><c/></b></a>`)), opt)
	var err error
	for err == nil {
		var tok ku.Token
		tok, err = src.NextToken()
		if tok.Kind == ku.TokenEOF {
			break
		}
	}
	it, ok := ku.FirstIssue(err)
	if !ok || it.Code != ku.CodeMaxDepth {
		t.Fatalf("want max_depth, got %v", err)
	}
	if it.Path != "/a/b/c" {
		t.Fatalf("path: %q", it.Path)
	}
	if len(sunk) != 1 || sunk[0].Code != ku.CodeMaxDepth {
		t.Fatalf("issue sink: %+v", sunk)
	}
}

func TestEnforceSource_DriverErrorsBecomeParseErrors(t *testing.T) {
	src := ku.EnforceSource(ku.XMLBytes([]byte(`<a><b></a>`)), ku.DefaultParseOpt())
	var err error
	for i := 0; i < 10 && err == nil; i++ {
		_, err = src.NextToken()
	}
	if !ku.HasCode(err, ku.CodeParseError) {
		t.Fatalf("want parse_error, got %v", err)
	}
}

func TestToIssues(t *testing.T) {
	if ku.ToIssues(nil, 0) != nil {
		t.Fatalf("nil error")
	}
	iss := ku.ToIssues(io.ErrClosedPipe, 12)
	if iss[0].Code != ku.CodeParseError || iss[0].Offset != 12 {
		t.Fatalf("issue: %+v", iss[0])
	}
	orig := ku.UnexpectedEOF("KU10")
	if got := ku.ToIssues(orig, 3); got[0].Code != ku.CodeUnexpectedEOF {
		t.Fatalf("Issues must pass through: %+v", got)
	}
}

func TestNewSink_DefaultDriver(t *testing.T) {
	var buf bytes.Buffer
	s := ku.NewSink(&buf, ku.EncodeOpt{})
	if err := s.StartElement("a", ku.Attr{Local: "x", Value: "1"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Text("t&"); err != nil {
		t.Fatal(err)
	}
	if err := s.EndElement("a"); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != `<a x="1">t&amp;</a>` {
		t.Fatalf("output: %s", buf.String())
	}
}
