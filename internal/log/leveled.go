package log

import (
	"fmt"
	"strings"

	"github.com/brickyard-dev/brick/internal/domain"
)

// Leveled adapts a domain.Logger to the key/value logging interface used by
// HTTP transports (Error/Info/Debug/Warn with msg and keysAndValues).
// Transport errors are logged at info: the caller reports the final failure.
type Leveled struct {
	Logger domain.Logger
}

func (l Leveled) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Info("%s", join(msg, keysAndValues))
}

func (l Leveled) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug("%s", join(msg, keysAndValues))
}

func (l Leveled) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug("%s", join(msg, keysAndValues))
}

func (l Leveled) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug("%s", join(msg, keysAndValues))
}

func join(msg string, kv []interface{}) string {
	if len(kv) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, " %v", kv[i])
		}
	}
	return b.String()
}
