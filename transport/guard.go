package transport

import (
	"context"

	"github.com/indigo-web/respond/errors"
)

type state uint8

const (
	awaitingStart state = iota
	streaming
	finished
)

// Guard enforces the order of messages: exactly one start, zero or more non-terminal bodies
// and exactly one terminal body. Violations are reported with errors.ErrProtocol and never
// reach the wrapped channel.
type Guard struct {
	next  Channel
	state state
}

func NewGuard(next Channel) *Guard {
	return &Guard{next: next}
}

func (g *Guard) Send(ctx context.Context, msg Message) error {
	switch {
	case msg.Kind == ResponseStart && g.state == awaitingStart:
		g.state = streaming
	case msg.Kind == ResponseBody && g.state == streaming:
		if !msg.More {
			g.state = finished
		}
	default:
		return errors.Wrap(errors.ErrProtocol, errors.New(msg.Kind.String()+" is not allowed here"))
	}

	return g.next.Send(ctx, msg)
}

// Done reports whether the terminal body message was sent.
func (g *Guard) Done() bool {
	return g.state == finished
}
