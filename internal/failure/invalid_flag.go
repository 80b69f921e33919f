package failure

import "fmt"

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    KindUsageMalformed,
		Message: fmt.Sprintf("Could not find an option named %q.", flag),
	}
}

// NegatedFlag is returned for --no-<name> on a flag that cannot be negated.
func NegatedFlag(name string) *Error {
	return &Error{
		Kind:    KindUsageMalformed,
		Message: fmt.Sprintf("Cannot negate option %q.", name),
	}
}

// MissingFlagValue is returned when a value flag is the last token.
func MissingFlagValue(flag string) *Error {
	return &Error{
		Kind:    KindUsageMalformed,
		Message: fmt.Sprintf("Missing argument for %q.", flag),
	}
}
