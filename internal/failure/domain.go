package failure

import "fmt"

// Malformed is a grammar mismatch found after parsing, such as a flag value
// of the wrong shape.
func Malformed(usage, format string, args ...any) *Error {
	return &Error{
		Kind:    KindUsageMalformed,
		Message: fmt.Sprintf(format, args...),
		Usage:   usage,
	}
}

// Semantic is returned by a command that parsed its arguments but found them
// invalid. usage is the command's help text.
func Semantic(usage, format string, args ...any) *Error {
	return &Error{
		Kind:    KindUsageSemantic,
		Message: fmt.Sprintf(format, args...),
		Usage:   usage,
	}
}

// Domain is a recognized failure of brick logic, such as a brick that
// cannot be resolved.
func Domain(format string, args ...any) *Error {
	return &Error{
		Kind:    KindDomain,
		Message: fmt.Sprintf(format, args...),
	}
}

// ExternalProcess wraps err from a process or service that could not be
// reached or run.
func ExternalProcess(err error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg += ": " + err.Error()
	}
	return &Error{
		Kind:    KindExternalProcess,
		Message: msg,
		Err:     err,
	}
}
