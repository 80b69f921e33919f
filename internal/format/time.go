// Package format renders times for terminal output.
package format

import (
	"fmt"
	"time"
)

// Date formats only the date portion.
// Example output: "2024-01-23"
func Date(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// Ago describes how long before now t happened.
// Example output: "just now", "5 minutes ago", "on 2024-01-23"
func Ago(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	default:
		return "on " + Date(t)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
