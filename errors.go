package kontrolluppgift

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/kontrolluppgift/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnexpectedElement   = "unexpected_element"
	CodeMissingElement      = "missing_element"
	CodeUnexpectedToken     = "unexpected_token"
	CodeUnexpectedEOF       = "unexpected_eof"
	CodeConstraintViolation = "constraint_violation"
	CodeIngestError         = "ingest_error"
	CodeDuplicateElement    = "duplicate_element"
	CodeInvalidType         = "invalid_type"
	CodeParseError          = "parse_error"
	CodeMaxDepth            = "max_depth"
)

// Issue represents a single decode, encode or ingestion failure.
type Issue struct {
	Path    string // Element path (for example: /Skatteverket/Blankett[0]/Blankettinnehall/KU10).
	Code    string // One of the codes listed above.
	Message string
	// Element names the element (or attribute) being processed.
	Element string
	// Reading names the record or envelope block that was being decoded.
	Reading string
	// Missing names the absent element or attribute for missing_element.
	Missing  string
	Expected string
	Got      string
	Hint     string // Optional: remediation hints, facet names, etc.
	Cause    error  // Optional: underlying error.
	Offset   int64  // Byte offset in the input source (-1 when unknown).
	// Params carries structured parameters (e.g., {"facet":"maxLength", "limit":5})
	// for i18n and observability.
	Params map[string]any
}

func (it Issue) String() string {
	path := it.Path
	if path == "" {
		path = "/"
	}
	if it.Message == "" {
		return fmt.Sprintf("%s at %s", it.Code, path)
	}
	return fmt.Sprintf("%s at %s: %s", it.Code, path, it.Message)
}

// Issues is a collection of issues that implements error. Decoding is
// fail-fast, so decode errors carry exactly one entry.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes underlying causes to errors.Is and errors.As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// Locate fills Path, Element and Offset on issues that do not carry them yet.
// An offset of -1 means unknown; 0 is the start of the input.
// Leaf codecs report issues without location; the record engine places them.
func (iss Issues) Locate(path, element string, offset int64) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "" {
			it.Path = path
		}
		if it.Element == "" {
			it.Element = element
			it.Message = it.render()
		}
		if it.Offset < 0 {
			it.Offset = offset
		}
		out[i] = it
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// messageKey selects the i18n key; Params["variant"] refines the wording.
func (it Issue) messageKey() string {
	if v, ok := it.Params["variant"].(string); ok && v != "" {
		return it.Code + "." + v
	}
	return it.Code
}

func (it Issue) render() string {
	data := map[string]string{
		"element":  it.Element,
		"reading":  it.Reading,
		"missing":  it.Missing,
		"expected": it.Expected,
		"got":      it.Got,
	}
	for k, v := range it.Params {
		if s, ok := v.(string); ok {
			data[k] = s
		} else {
			data[k] = fmt.Sprint(v)
		}
	}
	return i18n.T(it.messageKey(), data)
}

// single renders it with no known offset; Locate fills it in.
func single(it Issue) Issues {
	it.Offset = -1
	it.Message = it.render()
	return Issues{it}
}

// UnexpectedElement reports a child element that the record being read does
// not declare.
func UnexpectedElement(name, reading string) Issues {
	return single(Issue{Code: CodeUnexpectedElement, Element: name, Reading: reading})
}

// MissingElement reports a required element or attribute that was absent.
func MissingElement(missing, reading string) Issues {
	return single(Issue{Code: CodeMissingElement, Missing: missing, Reading: reading})
}

// UnexpectedToken reports text that failed a codec or format check. variant
// selects a specific message wording ("bool", "faltkod", "attribute") and may
// be empty.
func UnexpectedToken(variant, expected, got string) Issues {
	it := Issue{Code: CodeUnexpectedToken, Expected: expected, Got: got}
	if variant != "" {
		it.Params = map[string]any{"variant": variant}
	}
	return single(it)
}

// UnexpectedFaltkod reports a field code that differs from the declared one.
func UnexpectedFaltkod(element, expected, got string) Issues {
	return single(Issue{
		Code:     CodeUnexpectedToken,
		Element:  element,
		Expected: expected,
		Got:      got,
		Params:   map[string]any{"variant": "faltkod"},
	})
}

// UnexpectedEOF reports input that ended before reading was closed.
func UnexpectedEOF(reading string) Issues {
	return single(Issue{Code: CodeUnexpectedEOF, Reading: reading})
}

// ConstraintViolation reports a value rejected by a restriction facet.
func ConstraintViolation(facet, limit, value string) Issues {
	return single(Issue{
		Code:     CodeConstraintViolation,
		Expected: limit,
		Got:      fmt.Sprintf("%q", value),
		Params:   map[string]any{"facet": facet},
	})
}

// IngestError reports a schema document that cannot be ingested.
func IngestError(cause error) Issues {
	return single(Issue{
		Code:   CodeIngestError,
		Cause:  cause,
		Params: map[string]any{"detail": cause.Error()},
	})
}

// DuplicateElement reports a field that occurred more than once.
func DuplicateElement(name, reading string) Issues {
	return single(Issue{Code: CodeDuplicateElement, Element: name, Reading: reading})
}

// InvalidType reports a value that does not fit the field it is assigned to.
// got describes the offending value, usually its Go type or record name.
func InvalidType(element, expected, got string) Issues {
	return single(Issue{
		Code:     CodeInvalidType,
		Element:  element,
		Expected: expected,
		Got:      got,
	})
}

// ParseError wraps a failure reported by the XML driver.
func ParseError(cause error) Issues {
	return single(Issue{
		Code:   CodeParseError,
		Cause:  cause,
		Params: map[string]any{"detail": cause.Error()},
	})
}
