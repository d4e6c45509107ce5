package argot

import "fmt"

// ErrKind classifies parse failures.
type ErrKind int

const (
	// ErrUnknownOption is a flag-like token matching no registered flag.
	ErrUnknownOption ErrKind = iota
	// ErrOptionArity is a flag that consumed fewer values than its minimum.
	ErrOptionArity
	// ErrBadEquals is '='-syntax on a flag whose arity is not exactly one.
	ErrBadEquals
	// ErrInvalidChoice is a raw value outside a spec's choice set.
	ErrInvalidChoice
	// ErrConversion is a raw value the spec's converter rejected.
	ErrConversion
	// ErrSuperfluous is a trailing token with no positional slot left,
	// in strict mode.
	ErrSuperfluous
	// ErrMissingPositional is a required positional that never bound.
	ErrMissingPositional
)

// ParseError is returned when argv does not satisfy the schema. The
// same message, followed by a usage line, is written to the parser's
// error sink before the error is returned.
type ParseError struct {
	Kind ErrKind
	msg  string
}

func (e *ParseError) Error() string { return e.msg }

func parseErrorf(kind ErrKind, format string, a ...any) *ParseError {
	return &ParseError{Kind: kind, msg: fmt.Sprintf(format, a...)}
}
