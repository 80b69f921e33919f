package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags_Has(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		checkFor string
		want     bool
	}{
		{
			name:     "flag present",
			flags:    []string{"--force", "--global"},
			checkFor: "--force",
			want:     true,
		},
		{
			name:     "flag not present",
			flags:    []string{"--force"},
			checkFor: "--global",
			want:     false,
		},
		{
			name:     "empty flags",
			flags:    []string{},
			checkFor: "--force",
			want:     false,
		},
		{
			name:     "flag with value not detected as boolean",
			flags:    []string{"--output-dir=out"},
			checkFor: "--output-dir",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewParsedFlags(tt.flags)
			require.Equal(t, tt.want, pf.Has(tt.checkFor))
		})
	}
}

func TestParsedFlags_String(t *testing.T) {
	pf := NewParsedFlags([]string{"--output-dir=a", "--force", "--output-dir=b"})

	require.Equal(t, "b", pf.String("--output-dir", ""), "last value wins")
	require.Equal(t, "fallback", pf.String("--ref", "fallback"))
}

func TestParsedFlags_StringKeepsEqualsInValue(t *testing.T) {
	pf := NewParsedFlags([]string{"--var=name=widget"})

	require.Equal(t, "name=widget", pf.String("--var", ""))
}

func TestParsedFlags_Strings(t *testing.T) {
	pf := NewParsedFlags([]string{"--var=a=1", "--force", "--var=b=2"})

	require.Equal(t, []string{"a=1", "b=2"}, pf.Strings("--var"))
	require.Empty(t, pf.Strings("--missing"))
}

func TestParsedFlags_Int(t *testing.T) {
	pf := NewParsedFlags([]string{"--limit=5", "--bad=x"})

	require.Equal(t, 5, pf.Int("--limit", 0))
	require.Equal(t, 7, pf.Int("--bad", 7))
	require.Equal(t, 3, pf.Int("--none", 3))
}

func TestParsedFlags_Nil(t *testing.T) {
	var pf *ParsedFlags

	require.Nil(t, pf.Raw())
	require.False(t, pf.Has("--force"))
	require.Equal(t, "d", pf.String("--x", "d"))
}
