// Package nethttp bridges responses to handlers of the standard net/http server.
package nethttp

import (
	"context"
	"net/http"

	"github.com/indigo-web/respond/errors"
	"github.com/indigo-web/respond/transport"
)

var _ transport.Channel = new(Channel)

// Channel writes messages into the http.ResponseWriter. Non-terminal body messages are
// flushed immediately if the writer supports it.
type Channel struct {
	w       http.ResponseWriter
	started bool
	done    bool
}

func New(w http.ResponseWriter) *Channel {
	return &Channel{w: w}
}

func (c *Channel) Send(ctx context.Context, msg transport.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch {
	case msg.Kind == transport.ResponseStart && !c.started:
		c.started = true
		header := c.w.Header()
		for _, pair := range msg.Headers {
			key := http.CanonicalHeaderKey(pair.Key)
			if key == "Content-Length" {
				// must be exactly one
				header.Set(key, pair.Value)
				continue
			}

			header.Add(key, pair.Value)
		}

		c.w.WriteHeader(int(msg.Code))
		return nil
	case msg.Kind == transport.ResponseBody && c.started && !c.done:
		c.done = !msg.More

		if len(msg.Body) > 0 {
			if _, err := c.w.Write(msg.Body); err != nil {
				return err
			}
		}

		if msg.More {
			if flusher, ok := c.w.(http.Flusher); ok {
				flusher.Flush()
			}
		}

		return nil
	default:
		return errors.Wrap(errors.ErrProtocol, errors.New(msg.Kind.String()+" is not allowed here"))
	}
}

// Started reports whether the status line and headers were already written. After that,
// errors can't be reported to the client by a new response anymore.
func (c *Channel) Started() bool {
	return c.started
}
