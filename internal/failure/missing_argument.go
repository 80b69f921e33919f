package failure

import (
	"fmt"
	"strings"
)

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    KindUsageMalformed,
		Message: fmt.Sprintf("Missing required argument <%s>.", arg),
	}
}

// UnexpectedArguments is returned when more positional arguments are given
// than a command accepts.
func UnexpectedArguments(args []string) *Error {
	return &Error{
		Kind:    KindUsageMalformed,
		Message: fmt.Sprintf("Unexpected arguments: %s.", strings.Join(args, " ")),
	}
}
