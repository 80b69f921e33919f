package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testTime is a fixed time for consistent test results
var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.Local)

func TestDate(t *testing.T) {
	require.Equal(t, "2024-01-23", Date(testTime))
}

func TestAgo(t *testing.T) {
	tests := []struct {
		name  string
		delta time.Duration
		want  string
	}{
		{"future", -time.Hour, "just now"},
		{"seconds", 30 * time.Second, "just now"},
		{"one minute", time.Minute, "1 minute ago"},
		{"minutes", 45 * time.Minute, "45 minutes ago"},
		{"hours", 3 * time.Hour, "3 hours ago"},
		{"one day", 25 * time.Hour, "1 day ago"},
		{"days", 10 * 24 * time.Hour, "10 days ago"},
		{"old", 90 * 24 * time.Hour, "on 2024-01-23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Ago(testTime.Add(tt.delta), testTime))
		})
	}
}
