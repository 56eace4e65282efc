package respond

import (
	"context"
	"io"
	"testing"

	"github.com/indigo-web/respond/errors"
	"github.com/indigo-web/respond/http/headers"
	"github.com/indigo-web/respond/http/mime"
	"github.com/indigo-web/respond/http/serialize"
	"github.com/indigo-web/respond/http/status"
	"github.com/indigo-web/respond/transport"
	"github.com/indigo-web/respond/transport/dummy"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	t.Run("no explicit headers", func(t *testing.T) {
		h, err := synthesize(nil, 2, mime.HTML, mime.UTF8)
		require.NoError(t, err)
		require.Equal(t, []headers.Pair{
			{"content-length", "2"},
			{"content-type", "text/html; charset=utf-8"},
		}, h.Expose())
	})

	t.Run("non-textual media type", func(t *testing.T) {
		h, err := synthesize(nil, 0, mime.JSON, mime.UTF8)
		require.NoError(t, err)
		require.Equal(t, "application/json", h.Value("content-type"))
		require.Equal(t, "0", h.Value("content-length"))
	})

	t.Run("unknown length and unset media type", func(t *testing.T) {
		h, err := synthesize(nil, unknownLength, mime.Unset, mime.UTF8)
		require.NoError(t, err)
		require.True(t, h.Empty())
	})

	t.Run("explicit headers take precedence", func(t *testing.T) {
		explicit := headers.New().
			Add("X-Request-ID", "42").
			Add("Content-Length", "999").
			Add("Content-Type", "text/x-custom")

		h, err := synthesize(explicit, 2, mime.HTML, mime.UTF8)
		require.NoError(t, err)
		require.Equal(t, []headers.Pair{
			{"x-request-id", "42"},
			{"content-length", "999"},
			{"content-type", "text/x-custom"},
		}, h.Expose())
	})

	t.Run("explicit headers without overrides", func(t *testing.T) {
		h, err := synthesize(headers.New().Add("Server", "respond"), 5, mime.Plain, mime.Latin1)
		require.NoError(t, err)
		require.Equal(t, []headers.Pair{
			{"server", "respond"},
			{"content-length", "5"},
			{"content-type", "text/plain; charset=iso-8859-1"},
		}, h.Expose())
	})

	t.Run("latin-1 values", func(t *testing.T) {
		h, err := synthesize(headers.New().Add("X-Name", "café"), unknownLength, mime.Unset, mime.UTF8)
		require.NoError(t, err)
		require.Equal(t, "caf\xe9", h.Value("x-name"))

		_, err = synthesize(headers.New().Add("X-Name", "кафе"), unknownLength, mime.Unset, mime.UTF8)
		require.True(t, errors.Is(err, errors.ErrEncoding))
	})

	t.Run("byte-level values are kept", func(t *testing.T) {
		first, err := synthesize(headers.New().Add("X-Name", "café"), 4, mime.Plain, mime.UTF8)
		require.NoError(t, err)

		second, err := synthesize(first.Clone(), 4, mime.Plain, mime.UTF8)
		require.NoError(t, err)
		require.Equal(t, first.Expose(), second.Expose())
		require.Equal(t, "caf\xe9", second.Value("x-name"))
	})
}

func TestResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("bytes", func(t *testing.T) {
		resp, err := New(KindCustom, Bytes("hi"))
		require.NoError(t, err)
		require.Equal(t, "2", resp.Headers().Value("content-length"))
		require.False(t, resp.Headers().Has("content-type"))
		require.Equal(t, status.OK, resp.Code())
	})

	t.Run("html", func(t *testing.T) {
		resp, err := HTML(Text("<h1>Hello, world!</h1>"), WithCode(status.Created))
		require.NoError(t, err)

		ch := dummy.NewChannel()
		require.NoError(t, resp.Send(ctx, ch))

		msgs := ch.Messages()
		require.Len(t, msgs, 2)
		require.Equal(t, transport.ResponseStart, msgs[0].Kind)
		require.Equal(t, status.Created, msgs[0].Code)
		require.Equal(t, []headers.Pair{
			{"content-length", "22"},
			{"content-type", "text/html; charset=utf-8"},
		}, msgs[0].Headers)
		require.Equal(t, transport.ResponseBody, msgs[1].Kind)
		require.Equal(t, "<h1>Hello, world!</h1>", string(msgs[1].Body))
		require.False(t, msgs[1].More)
	})

	t.Run("plain text in another charset", func(t *testing.T) {
		resp, err := PlainText(Text("café"), WithCharset(mime.Latin1))
		require.NoError(t, err)
		require.Equal(t, []byte("caf\xe9"), resp.Body())
		require.Equal(t, "4", resp.Headers().Value("content-length"))
		require.Equal(t, "text/plain; charset=iso-8859-1", resp.Headers().Value("content-type"))
	})

	t.Run("explicit content length wins", func(t *testing.T) {
		resp, err := New(KindCustom, Bytes("hi"), WithHeaders(headers.New().Add("Content-Length", "999")))
		require.NoError(t, err)
		require.Equal(t, []string{"999"}, values(resp.Headers(), "content-length"))
	})

	t.Run("media type override", func(t *testing.T) {
		resp, err := HTML(Text(""), WithMediaType(mime.XML))
		require.NoError(t, err)
		require.Equal(t, "text/xml; charset=utf-8", resp.Headers().Value("content-type"))

		resp, err = HTML(Text(""), WithMediaType(mime.HTML+"; charset=koi8-r"))
		require.NoError(t, err)
		require.Equal(t, "text/html; charset=koi8-r", resp.Headers().Value("content-type"))

		resp, err = HTML(Text(""), WithMediaType(mime.Plain+";"))
		require.NoError(t, err)
		require.Equal(t, "text/plain;", resp.Headers().Value("content-type"))

		resp, err = HTML(Text(""), WithMediaType(mime.Unset))
		require.NoError(t, err)
		require.False(t, resp.Headers().Has("content-type"))
	})

	t.Run("nil body", func(t *testing.T) {
		_, err := New(KindHTML, nil)
		require.True(t, errors.Is(err, errors.ErrEncoding))
	})

	t.Run("unrepresentable text", func(t *testing.T) {
		_, err := PlainText(Text("日本"), WithCharset(mime.ASCII))
		require.True(t, errors.Is(err, errors.ErrEncoding))
	})

	t.Run("unknown charset", func(t *testing.T) {
		_, err := PlainText(Text("hello"), WithCharset("klingon-8"))
		require.True(t, errors.Is(err, errors.ErrEncoding))
	})

	t.Run("json round trip", func(t *testing.T) {
		resp, err := JSON(map[string]int{"a": 1})
		require.NoError(t, err)
		require.Equal(t, "application/json", resp.Headers().Value("content-type"))

		var decoded map[string]int
		require.NoError(t, serialize.JSON.Decode(resp.Body(), &decoded))
		require.Equal(t, map[string]int{"a": 1}, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		resp, err := YAML(map[string][]string{"tags": {"a", "b"}})
		require.NoError(t, err)
		require.Equal(t, "application/yaml", resp.Headers().Value("content-type"))
		require.Equal(t, KindYAML, resp.Kind())

		var decoded map[string][]string
		require.NoError(t, serialize.YAML.Decode(resp.Body(), &decoded))
		require.Equal(t, []string{"a", "b"}, decoded["tags"])
	})

	t.Run("not serializable", func(t *testing.T) {
		_, err := JSON(make(chan int))
		require.True(t, errors.Is(err, errors.ErrSerialization))
	})

	t.Run("channel failure", func(t *testing.T) {
		resp, err := PlainText(Text("hello"))
		require.NoError(t, err)

		ch := dummy.NewChannel().FailAt(1, io.ErrClosedPipe)
		err = resp.Send(ctx, ch)
		require.True(t, errors.Is(err, errors.ErrTransport))
		require.ErrorIs(t, err, io.ErrClosedPipe)
		require.Len(t, ch.Messages(), 1)
	})

	t.Run("headers of another response", func(t *testing.T) {
		resp, err := PlainText(Text("hello"), WithHeaders(headers.New().Add("X-Name", "café")))
		require.NoError(t, err)

		ch := dummy.NewChannel()
		require.NoError(t, resp.Send(ctx, ch))

		again, err := PlainText(Text("hello"), WithHeaders(ch.Headers()))
		require.NoError(t, err)
		require.Equal(t, resp.Headers().Expose(), again.Headers().Expose())
	})

	t.Run("headers mutation is transmitted", func(t *testing.T) {
		resp, err := PlainText(Text("hello"))
		require.NoError(t, err)
		resp.Headers().SetDefault("cache-control", "no-store")
		resp.Headers().SetDefault("Content-Type", "text/html")

		ch := dummy.NewChannel()
		require.NoError(t, resp.Send(ctx, ch))
		require.Equal(t, "no-store", ch.Headers().Value("cache-control"))
		require.Equal(t, "text/plain; charset=utf-8", ch.Headers().Value("content-type"))
		require.Equal(t, 3, ch.Headers().Len())
	})
}

func values(h *headers.Headers, key string) (vals []string) {
	for k, v := range h.Iter() {
		if k == key {
			vals = append(vals, v)
		}
	}

	return vals
}
