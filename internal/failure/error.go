// Package failure defines the error taxonomy used to pick a process exit
// code. Commands return these errors; only the command runner prints them.
package failure

import "errors"

// Kind classifies a failure for exit-code mapping.
type Kind int

const (
	// KindUnclassified is any failure not raised through this package.
	KindUnclassified Kind = iota
	// KindUsageMalformed means the arguments did not match the grammar.
	KindUsageMalformed
	// KindUsageSemantic means a command rejected well-formed arguments.
	KindUsageSemantic
	// KindDomain is a recognized, named failure of brick logic.
	KindDomain
	// KindExternalProcess means an external process or service could not
	// run or answered in an unexpected state.
	KindExternalProcess
)

func (k Kind) String() string {
	switch k {
	case KindUsageMalformed:
		return "usage"
	case KindUsageSemantic:
		return "invalid arguments"
	case KindDomain:
		return "brick error"
	case KindExternalProcess:
		return "external failure"
	default:
		return "unexpected error"
	}
}

// Error is a failure carrying its taxonomy tag.
type Error struct {
	Kind    Kind
	Message string
	// Usage is the help text shown after the message for usage kinds.
	Usage string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ShowsUsage reports whether the usage text accompanies the message.
func (e *Error) ShowsUsage() bool {
	return (e.Kind == KindUsageMalformed || e.Kind == KindUsageSemantic) && e.Usage != ""
}

// WithUsage returns a copy of e carrying usage.
func (e *Error) WithUsage(usage string) *Error {
	c := *e
	c.Usage = usage
	return &c
}

// KindOf returns the Kind of the first *Error in err's chain, or
// KindUnclassified.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnclassified
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
