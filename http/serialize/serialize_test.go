package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		data, err := JSON.Encode(map[string]any{"a": 1})
		require.NoError(t, err)
		require.Equal(t, `{"a":1}`, string(data))

		var decoded map[string]int
		require.NoError(t, JSON.Decode(data, &decoded))
		require.Equal(t, map[string]int{"a": 1}, decoded)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := JSON.Encode(make(chan int))
		require.Error(t, err)
	})
}

func TestYAML(t *testing.T) {
	type model struct {
		Name  string   `yaml:"name"`
		Tags  []string `yaml:"tags"`
		Count int      `yaml:"count"`
	}

	t.Run("round trip", func(t *testing.T) {
		in := model{Name: "pavlo", Tags: []string{"a", "b"}, Count: 3}
		data, err := YAML.Encode(in)
		require.NoError(t, err)

		var out model
		require.NoError(t, YAML.Decode(data, &out))
		require.Equal(t, in, out)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := YAML.Encode(func() {})
		require.Error(t, err)
	})
}
