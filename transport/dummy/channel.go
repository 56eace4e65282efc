package dummy

import (
	"context"

	"github.com/indigo-web/respond/http/headers"
	"github.com/indigo-web/respond/transport"
)

var _ transport.Channel = new(Channel)

// Channel tracks every sent message, making it thereby a universal mock suitable for most
// of the tests. Bodies are copied, so reusing the buffer by the sender is visible neither
// in the journal nor in the assertions.
type Channel struct {
	messages []transport.Message
	failAt   int
	failErr  error
	sends    int
}

func NewChannel() *Channel {
	return &Channel{failAt: -1}
}

// FailAt makes the n-th (zero-based) call to Send return the err without recording
// the message.
func (c *Channel) FailAt(n int, err error) *Channel {
	c.failAt, c.failErr = n, err
	return c
}

func (c *Channel) Send(ctx context.Context, msg transport.Message) error {
	defer func() { c.sends++ }()

	if err := ctx.Err(); err != nil {
		return err
	}

	if c.sends == c.failAt {
		return c.failErr
	}

	if msg.Body != nil {
		msg.Body = append([]byte{}, msg.Body...)
	}

	if msg.Headers != nil {
		msg.Headers = append([]headers.Pair{}, msg.Headers...)
	}

	c.messages = append(c.messages, msg)
	return nil
}

// Messages returns all the recorded messages in order.
func (c *Channel) Messages() []transport.Message {
	return c.messages
}

// Start returns the first recorded message, which is expected to be the start one.
func (c *Channel) Start() transport.Message {
	if len(c.messages) == 0 {
		panic("dummy channel: no messages were sent")
	}

	return c.messages[0]
}

// Headers wraps headers of the start message for convenient lookups.
func (c *Channel) Headers() *headers.Headers {
	return headers.FromPairs(c.Start().Headers)
}

// Bodies returns all the recorded body messages.
func (c *Channel) Bodies() (bodies []transport.Message) {
	for _, msg := range c.messages {
		if msg.Kind == transport.ResponseBody {
			bodies = append(bodies, msg)
		}
	}

	return bodies
}

// Joined concatenates all the recorded body chunks.
func (c *Channel) Joined() string {
	var body []byte
	for _, msg := range c.Bodies() {
		body = append(body, msg.Body...)
	}

	return string(body)
}

// Terminals returns how many messages closing the response were recorded.
func (c *Channel) Terminals() (n int) {
	for _, msg := range c.messages {
		if msg.Terminal() {
			n++
		}
	}

	return n
}
