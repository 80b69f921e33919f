package dispatchers

import (
	"strconv"
	"strings"
)

// ParsedFlags provides typed access to command-line flags. Flags are stored
// under their canonical name, value flags as "--name=value".
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	if f == nil {
		return nil
	}
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.Raw() {
		if flag == name {
			return true
		}
	}
	return false
}

// String returns the last value of a flag, or defaultVal if not present.
func (f *ParsedFlags) String(name, defaultVal string) string {
	values := f.Strings(name)
	if len(values) == 0 {
		return defaultVal
	}
	return values[len(values)-1]
}

// Strings returns every value given for a repeatable flag, in order.
func (f *ParsedFlags) Strings(name string) []string {
	prefix := name + "="
	var values []string
	for _, flag := range f.Raw() {
		if strings.HasPrefix(flag, prefix) {
			values = append(values, strings.TrimPrefix(flag, prefix))
		}
	}
	return values
}

// Int returns the integer value of a flag, or defaultVal if not present or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}
