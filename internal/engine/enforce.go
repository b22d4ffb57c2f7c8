package engine

import (
	"strconv"
	"strings"
)

// Enforcement wrapper for TokenSource that checks element balance and the
// maximum nesting depth in a streaming fashion.

// SimpleIssue is a lightweight issue produced inside the engine.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	MaxDepth int
	// IssueSink is an optional callback receiving every issue before it is
	// returned as an error.
	IssueSink func(SimpleIssue)
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// WrapWithEnforcement returns a TokenSource that rejects unbalanced end tags
// and documents nested deeper than MaxDepth.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []string
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case KindStart:
		e.stack = append(e.stack, tok.Name)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, e.fail(SimpleIssue{
				Code:    "max_depth",
				Path:    e.path(),
				Message: "max depth " + strconv.Itoa(e.opt.MaxDepth) + " exceeded",
			})
		}
	case KindEnd:
		n := len(e.stack)
		if n == 0 {
			return Token{}, e.fail(SimpleIssue{Code: "parse_error", Path: "/", Message: "unexpected end tag </" + tok.Name + ">"})
		}
		if top := e.stack[n-1]; top != tok.Name {
			return Token{}, e.fail(SimpleIssue{
				Code:    "parse_error",
				Path:    e.path(),
				Message: "expected </" + top + "> found </" + tok.Name + ">",
			})
		}
		e.stack = e.stack[:n-1]
	}
	return tok, nil
}

func (e *enforcingTokenSource) fail(si SimpleIssue) error {
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(si)
	}
	return IssueError{si}
}

func (e *enforcingTokenSource) path() string {
	if len(e.stack) == 0 {
		return "/"
	}
	return "/" + strings.Join(e.stack, "/")
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }
