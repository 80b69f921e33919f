package failure

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the command name is not registered.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("Could not find a command named %q.", command)
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean one of these?\n  " + strings.Join(suggestions, "\n  ")
	}
	return &Error{
		Kind:    KindUsageMalformed,
		Message: msg,
	}
}
