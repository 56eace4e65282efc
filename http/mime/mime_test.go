package mime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	for _, tc := range []struct {
		mime   MIME
		params string
		found  bool
	}{
		{JSON, "", false},
		{Unset, "", false},
		{HTML + "; charset=koi8-r", "charset=koi8-r", true},
		{Plain + ";q=1", "q=1", true},
		{Plain + ";", "", true},
		{Plain + "; ", "", true},
	} {
		params, found := Params(tc.mime)
		require.Equal(t, tc.params, params, tc.mime)
		require.Equal(t, tc.found, found, tc.mime)
	}
}

func TestTextual(t *testing.T) {
	require.True(t, Textual(HTML))
	require.True(t, Textual(Plain))
	require.False(t, Textual(JSON))
	require.False(t, Textual(Unset))
	require.False(t, Textual("texture/x"))
}

func TestGuess(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		m, ok := Guess("/var/www/index.HTML")
		require.True(t, ok)
		require.Equal(t, HTML, m)

		m, ok = Guess("report.pdf")
		require.True(t, ok)
		require.Equal(t, PDF, m)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := Guess("archive.unknownext")
		require.False(t, ok)

		_, ok = Guess("Makefile")
		require.False(t, ok)
	})
}
