// Package respond turns application content into HTTP responses transmitted over an
// abstract message channel.
//
// Every response is sent as exactly one start message carrying the status code and headers,
// followed by one or more body messages, the last of which is terminal:
//
//	resp, err := respond.HTML(respond.Text("<h1>Hello, world!</h1>"))
//	if err != nil {
//		return err
//	}
//
//	return resp.Send(ctx, channel)
//
// Headers are synthesized once at construction: Content-Length for fixed bodies and
// Content-Type for set media types, each unless passed explicitly. Streaming and File
// responses transmit their content chunk by chunk, never holding it entirely in memory.
package respond

import (
	"context"

	"github.com/indigo-web/respond/http/headers"
	"github.com/indigo-web/respond/http/status"
	"github.com/indigo-web/respond/transport"
)

// Sender is implemented by every response variant.
type Sender interface {
	Code() status.Code
	Headers() *headers.Headers
	Send(ctx context.Context, ch transport.Channel) error
}

var (
	_ Sender = new(Response)
	_ Sender = new(Streaming)
	_ Sender = new(File)
)
