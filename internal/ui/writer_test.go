package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PrintfAndPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)

	require.Equal(t, "a=1\ndone\n", buf.String())
}

func TestWriter_PagerPrintsWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithEnvGetter(func(string) string { return "definitely-not-a-pager" }))

	w.Pager("line 1\nline 2\n")

	require.Equal(t, "line 1\nline 2\n", buf.String())
}

func TestWriter_PagerDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerDisabled())

	w.Pager("content")

	require.Equal(t, "content", buf.String())
}

func TestIsTerminal_NonFile(t *testing.T) {
	require.False(t, IsTerminal(&bytes.Buffer{}))
	require.False(t, IsTerminal(nil))
}
