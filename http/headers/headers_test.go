package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	getHeaders := func() *Headers {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo")
	}

	t.Run("get", func(t *testing.T) {
		h := getHeaders()
		value, found := h.Get("HELLO")
		require.True(t, found)
		require.Equal(t, "World", value)

		_, found = h.Get("random")
		require.False(t, found)
		require.Equal(t, "default", h.ValueOr("random", "default"))
		require.Empty(t, h.Value("random"))
	})

	t.Run("set", func(t *testing.T) {
		h := getHeaders().Set("HELLO", "no more Pavlo")

		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "no more Pavlo"},
			{"Lorem", "ipsum"},
		}

		require.Equal(t, want, h.Expose())
	})

	t.Run("set new key", func(t *testing.T) {
		h := New().
			Add("Pavlo", "the best").
			Set("Glory to", "Ukraine")

		want := []Pair{
			{"Pavlo", "the best"},
			{"Glory to", "Ukraine"},
		}

		require.Equal(t, want, h.Expose())
	})

	t.Run("set default", func(t *testing.T) {
		h := getHeaders()
		require.Equal(t, "bar", h.SetDefault("FOO", "baz"))
		require.Equal(t, 4, h.Len())

		require.Equal(t, "1", h.SetDefault("etag", "1"))
		require.Equal(t, 5, h.Len())
		require.Equal(t, Pair{"etag", "1"}, h.Expose()[4])
	})

	t.Run("delete", func(t *testing.T) {
		h := getHeaders().Delete("hello")

		want := []Pair{
			{"Foo", "bar"},
			{"Lorem", "ipsum"},
		}

		require.Equal(t, want, h.Expose())
	})

	t.Run("iter", func(t *testing.T) {
		var keys []string
		for key := range getHeaders().Iter() {
			keys = append(keys, key)
			if len(keys) == 2 {
				break
			}
		}

		require.Equal(t, []string{"Foo", "Hello"}, keys)
	})

	t.Run("write through", func(t *testing.T) {
		pairs := make([]Pair, 0, 4)
		h := FromPairs(pairs)
		h.SetDefault("etag", "abc")
		require.Equal(t, "abc", h.Expose()[0].Value)
		require.Equal(t, "abc", pairs[:1][0].Value)
	})

	t.Run("clone", func(t *testing.T) {
		h := getHeaders()
		clone := h.Clone().Set("foo", "qux")
		require.Equal(t, "bar", h.Value("foo"))
		require.Equal(t, "qux", clone.Value("foo"))
		require.True(t, New().Clone().Empty())
	})
}
