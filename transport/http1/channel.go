// Package http1 implements transport.Channel writing responses in HTTP/1.1 wire format.
package http1

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/indigo-web/respond/errors"
	"github.com/indigo-web/respond/http/headers"
	"github.com/indigo-web/respond/http/status"
	"github.com/indigo-web/respond/transport"
	"github.com/indigo-web/utils/strcomp"
)

const (
	protocol          = "HTTP/1.1 "
	crlf              = "\r\n"
	lastChunk         = "0\r\n\r\n"
	defaultBufferSize = 4 * 1024
)

type deadliner interface {
	SetWriteDeadline(t time.Time) error
}

var _ transport.Channel = new(Channel)

// Channel serializes messages of a single response into the writer. If the response has
// Content-Length, the body is written as is. Otherwise, the chunked transfer encoding is
// applied.
//
// Writes are buffered and flushed when the buffer overflows, on every non-terminal chunked
// message, so streams aren't delayed, and on the terminal message.
type Channel struct {
	w       io.Writer
	buff    []byte
	chunked bool
	noBody  bool
	state   uint8
}

// New returns a new channel. The buffer is used for writes batching, so its capacity should
// be reasonably large. Nil buffer is replaced by a 4kb one.
func New(w io.Writer, buff []byte) *Channel {
	if cap(buff) == 0 {
		buff = make([]byte, 0, defaultBufferSize)
	}

	return &Channel{
		w:    w,
		buff: buff[:0],
	}
}

const (
	awaitingStart uint8 = iota
	streaming
	finished
)

func (c *Channel) Send(ctx context.Context, msg transport.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if d, ok := c.w.(deadliner); ok {
		if deadline, set := ctx.Deadline(); set {
			if err := d.SetWriteDeadline(deadline); err != nil {
				return err
			}
		}
	}

	switch {
	case msg.Kind == transport.ResponseStart && c.state == awaitingStart:
		c.state = streaming
		c.writeStart(msg)
		return nil
	case msg.Kind == transport.ResponseBody && c.state == streaming:
		if !msg.More {
			c.state = finished
		}

		return c.writeBody(msg.Body, msg.More)
	default:
		return errors.Wrap(errors.ErrProtocol, errors.New(msg.Kind.String()+" is not allowed here"))
	}
}

func (c *Channel) writeStart(msg transport.Message) {
	c.noBody = bodyless(msg.Code)
	c.chunked = !c.noBody && !hasLength(msg.Headers)

	c.buff = append(c.buff, protocol...)
	c.buff = strconv.AppendUint(c.buff, uint64(msg.Code), 10)
	c.buff = append(c.buff, ' ')
	c.buff = append(c.buff, status.Text(msg.Code)...)
	c.crlf()

	for _, header := range msg.Headers {
		c.buff = append(c.buff, header.Key...)
		c.buff = append(c.buff, ':', ' ')
		c.buff = append(c.buff, header.Value...)
		c.crlf()
	}

	if c.chunked {
		c.buff = append(c.buff, headers.TransferEncoding+": chunked"...)
		c.crlf()
	}

	c.crlf()
}

func (c *Channel) writeBody(body []byte, more bool) error {
	switch {
	case c.noBody:
	case c.chunked:
		if len(body) > 0 {
			c.buff = strconv.AppendUint(c.buff, uint64(len(body)), 16)
			c.crlf()
			if err := c.safeAppend(body); err != nil {
				return err
			}
			c.crlf()
		}

		if more {
			return c.flush()
		}

		c.buff = append(c.buff, lastChunk...)
	default:
		if err := c.safeAppend(body); err != nil {
			return err
		}
	}

	if more {
		return nil
	}

	return c.flush()
}

// safeAppend appends the data to the buffer if there's enough free space. Otherwise, the
// buffer is flushed and the data is written directly.
func (c *Channel) safeAppend(data []byte) error {
	if len(data) <= cap(c.buff)-len(c.buff) {
		c.buff = append(c.buff, data...)
		return nil
	}

	if err := c.flush(); err != nil {
		return err
	}

	_, err := c.w.Write(data)
	return err
}

func (c *Channel) flush() (err error) {
	if len(c.buff) > 0 {
		_, err = c.w.Write(c.buff)
		c.buff = c.buff[:0]
	}

	return err
}

func (c *Channel) crlf() {
	c.buff = append(c.buff, crlf...)
}

// Done reports whether the response was completely written.
func (c *Channel) Done() bool {
	return c.state == finished
}

// Reset prepares the channel for the next response on the same connection.
func (c *Channel) Reset() {
	c.buff = c.buff[:0]
	c.state = awaitingStart
	c.chunked, c.noBody = false, false
}

func hasLength(pairs []headers.Pair) bool {
	for _, pair := range pairs {
		if strcomp.EqualFold(pair.Key, headers.ContentLength) {
			return true
		}
	}

	return false
}

func bodyless(code status.Code) bool {
	return code < 200 || code == status.NoContent || code == status.NotModified
}
