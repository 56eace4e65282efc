package transport

import (
	"context"
	"testing"

	"github.com/indigo-web/respond/errors"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	var sent []Message
	sink := ChannelFunc(func(_ context.Context, msg Message) error {
		sent = append(sent, msg)
		return nil
	})
	ctx := context.Background()

	t.Run("valid sequence", func(t *testing.T) {
		sent = nil
		g := NewGuard(sink)
		require.NoError(t, g.Send(ctx, Start(200, nil)))
		require.NoError(t, g.Send(ctx, Body([]byte("a"), true)))
		require.False(t, g.Done())
		require.NoError(t, g.Send(ctx, Body(nil, false)))
		require.True(t, g.Done())
		require.Len(t, sent, 3)
	})

	t.Run("body before start", func(t *testing.T) {
		sent = nil
		g := NewGuard(sink)
		err := g.Send(ctx, Body(nil, false))
		require.True(t, errors.Is(err, errors.ErrProtocol))
		require.Empty(t, sent)
	})

	t.Run("second start", func(t *testing.T) {
		g := NewGuard(sink)
		require.NoError(t, g.Send(ctx, Start(200, nil)))
		require.True(t, errors.Is(g.Send(ctx, Start(200, nil)), errors.ErrProtocol))
	})

	t.Run("after terminal", func(t *testing.T) {
		g := NewGuard(sink)
		require.NoError(t, g.Send(ctx, Start(200, nil)))
		require.NoError(t, g.Send(ctx, Body(nil, false)))
		require.True(t, errors.Is(g.Send(ctx, Body([]byte("x"), true)), errors.ErrProtocol))
	})
}

func TestMessage(t *testing.T) {
	require.True(t, Body(nil, false).Terminal())
	require.False(t, Body(nil, true).Terminal())
	require.False(t, Start(200, nil).Terminal())
	require.Equal(t, "response-start", ResponseStart.String())
	require.Equal(t, "response-body", ResponseBody.String())
}
