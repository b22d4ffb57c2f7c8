package kontrolluppgift

import "go.uber.org/zap"

// DefaultMaxDepth bounds element nesting. Documents of this family nest
// at most six levels deep including the envelope.
const DefaultMaxDepth = 32

// Strictness configures enforcement for input the format does not forbid
// outright.
type Strictness struct {
	// OnDuplicateField controls a record field that occurs more than once.
	// Ignore keeps the last occurrence, Warn keeps the last occurrence and
	// reports it, Error fails the decode with duplicate_element.
	OnDuplicateField Severity
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Ignore:
		return "ignore"
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return "unknown"
}

// ParseSeverity maps "ignore", "warn" and "error" to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "ignore":
		return Ignore, true
	case "warn", "":
		return Warn, true
	case "error":
		return Error, true
	}
	return Ignore, false
}

// ParseOpt bundles decoding options. The zero value ignores duplicate fields
// and applies no depth limit; DefaultParseOpt is what the document codec uses.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	// Logger receives debug traces and duplicate-field warnings; nil disables
	// logging.
	Logger *zap.Logger
	// IssueSink receives non-fatal issues (duplicate fields under Warn).
	IssueSink func(Issue)
}

// DefaultParseOpt returns the options used when callers pass none.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{
		Strictness: Strictness{OnDuplicateField: Warn},
		MaxDepth:   DefaultMaxDepth,
	}
}

// Log returns the configured logger or a no-op logger.
func (o ParseOpt) Log() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	// Indent is repeated once per nesting level; empty writes no whitespace
	// between elements.
	Indent string
	Logger *zap.Logger
}

// DefaultEncodeOpt returns the options used when callers pass none.
func DefaultEncodeOpt() EncodeOpt { return EncodeOpt{Indent: "  "} }

// Log returns the configured logger or a no-op logger.
func (o EncodeOpt) Log() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ParseOptOrDefault returns opts[0] or DefaultParseOpt when none is given.
func ParseOptOrDefault(opts ...ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return DefaultParseOpt()
	}
	return opts[0]
}

// EncodeOptOrDefault returns opts[0] or DefaultEncodeOpt when none is given.
func EncodeOptOrDefault(opts ...EncodeOpt) EncodeOpt {
	if len(opts) == 0 {
		return DefaultEncodeOpt()
	}
	return opts[0]
}
