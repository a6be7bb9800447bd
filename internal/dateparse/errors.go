// Package dateparse converts the three textual time formats zap accepts
// into the filetime model: -d style absolute dates, -t style compact
// numeric stamps, and -A style second-resolution adjustments.
//
// Every entry point returns a *ParseError on bad input; none panic.
package dateparse

import "fmt"

// Kind classifies a parse failure.
type Kind int

const (
	// KindSyntax is malformed input: wrong shape, stray characters,
	// bad digit grouping.
	KindSyntax Kind = iota

	// KindRange is syntactically valid input with an out-of-range
	// calendar or clock component.
	KindRange

	// KindAmbiguousTime is a local wall-clock time that is ambiguous or
	// non-existent under the location's calendar transitions.
	KindAmbiguousTime

	// KindOverflow is a numeric overflow while combining components.
	KindOverflow
)

// String returns a human label for the kind.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindRange:
		return "range"
	case KindAmbiguousTime:
		return "ambiguous time"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// ParseError describes why an input string could not be parsed.
type ParseError struct {
	// Input is the offending string as supplied by the user.
	Input string

	// Kind classifies the failure.
	Kind Kind

	// Reason is a human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func syntaxErr(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Kind: KindSyntax, Reason: fmt.Sprintf(format, args...)}
}

func rangeErr(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Kind: KindRange, Reason: fmt.Sprintf(format, args...)}
}

func ambiguousErr(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Kind: KindAmbiguousTime, Reason: fmt.Sprintf(format, args...)}
}

func overflowErr(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Kind: KindOverflow, Reason: fmt.Sprintf(format, args...)}
}
