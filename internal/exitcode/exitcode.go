// Package exitcode maps failures to process exit codes.
package exitcode

import (
	"errors"
	"os/exec"

	"github.com/brickyard-dev/brick/internal/failure"
)

// Code is a process exit code.
type Code int

// Exit codes follow the BSD sysexits convention.
const (
	Success     Code = 0
	Usage       Code = 64 // EX_USAGE
	Unavailable Code = 69 // EX_UNAVAILABLE
	Software    Code = 70 // EX_SOFTWARE
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case Usage:
		return "usage error"
	case Unavailable:
		return "service unavailable"
	case Software:
		return "software error"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 64: malformed arguments, rejected arguments, brick errors
//	Exit 69: an external process or service could not be used
//	Exit 70: everything else
var exitCodes = map[failure.Kind]Code{
	failure.KindUsageMalformed:  Usage,
	failure.KindUsageSemantic:   Usage,
	failure.KindDomain:          Usage,
	failure.KindExternalProcess: Unavailable,
	failure.KindUnclassified:    Software,
}

// FromError maps err to an exit code. The mapping is total: a nil error is
// Success and any unrecognized error is Software.
func FromError(err error) Code {
	if err == nil {
		return Success
	}

	var fe *failure.Error
	if errors.As(err, &fe) {
		if code, ok := exitCodes[fe.Kind]; ok {
			return code
		}
		return Software
	}

	var execErr *exec.Error
	var exitErr *exec.ExitError
	if errors.As(err, &execErr) || errors.As(err, &exitErr) {
		return Unavailable
	}

	return Software
}
