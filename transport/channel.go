package transport

import (
	"context"

	"github.com/indigo-web/respond/http/headers"
	"github.com/indigo-web/respond/http/status"
)

type Kind uint8

const (
	// ResponseStart is the first message of every response, carrying status code and headers.
	ResponseStart Kind = iota + 1
	// ResponseBody carries a piece of the response body and the continuation flag.
	ResponseBody
)

func (k Kind) String() string {
	switch k {
	case ResponseStart:
		return "response-start"
	case ResponseBody:
		return "response-body"
	default:
		return "unknown"
	}
}

// Message is a single unit transmitted through the Channel. Start messages use only the Code
// and Headers fields, body messages use only Body and More.
type Message struct {
	Kind    Kind
	Code    status.Code
	Headers []headers.Pair
	Body    []byte
	// More is true for every body message of the response except the last one.
	More bool
}

// Start returns a start message. Headers slice is passed as is, so the transmitted header
// sequence is exactly the one held by the response.
func Start(code status.Code, pairs []headers.Pair) Message {
	return Message{
		Kind:    ResponseStart,
		Code:    code,
		Headers: pairs,
	}
}

// Body returns a body message.
func Body(chunk []byte, more bool) Message {
	return Message{
		Kind: ResponseBody,
		Body: chunk,
		More: more,
	}
}

// Terminal reports whether the message closes the response.
func (m Message) Terminal() bool {
	return m.Kind == ResponseBody && !m.More
}

// Channel transmits messages of a single response. A response emits exactly one start message
// followed by one or more body messages, the last of which has More unset.
//
// Implementations must not retain msg.Body after Send returns, as callers are free to
// reuse the buffer for the next chunk.
type Channel interface {
	Send(ctx context.Context, msg Message) error
}

// ChannelFunc is an adapter to use ordinary functions as channels.
type ChannelFunc func(ctx context.Context, msg Message) error

func (c ChannelFunc) Send(ctx context.Context, msg Message) error {
	return c(ctx, msg)
}
