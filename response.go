package respond

import (
	"context"

	"github.com/indigo-web/respond/errors"
	"github.com/indigo-web/respond/http/serialize"
	"github.com/indigo-web/respond/transport"
)

// Response holds fully materialized content and transmits it at once: a start message
// followed by a single terminal body message.
type Response struct {
	head
	body []byte
}

// New renders the content and freezes the headers. The media type defaults to the one of
// the kind. Content of KindJSON and KindYAML responses is expected to be already serialized;
// use JSON and YAML in order to serialize values.
func New(kind Kind, content Body, opts ...Option) (*Response, error) {
	o := newOptions(opts)

	body, err := render(content, o.charset)
	if err != nil {
		return nil, err
	}

	return newResponse(kind, o, body)
}

// HTML returns a text/html response.
func HTML(content Body, opts ...Option) (*Response, error) {
	return New(KindHTML, content, opts...)
}

// PlainText returns a text/plain response.
func PlainText(content Body, opts ...Option) (*Response, error) {
	return New(KindPlainText, content, opts...)
}

// JSON serializes the value and returns an application/json response. The value must be
// serializable, otherwise errors.ErrSerialization is returned.
func JSON(value any, opts ...Option) (*Response, error) {
	return Serialized(KindJSON, serialize.JSON, value, opts...)
}

// YAML serializes the value and returns an application/yaml response.
func YAML(value any, opts ...Option) (*Response, error) {
	return Serialized(KindYAML, serialize.YAML, value, opts...)
}

// Serialized encodes the value using the encoder. Encoders are expected to produce UTF-8.
func Serialized(kind Kind, enc serialize.Encoder, value any, opts ...Option) (*Response, error) {
	o := newOptions(opts)

	body, err := enc.Encode(value)
	if err != nil {
		return nil, errors.Wrap(errors.ErrSerialization, err)
	}

	return newResponse(kind, o, body)
}

func newResponse(kind Kind, o options, body []byte) (*Response, error) {
	h, err := newHead(kind, o, o.mediaTypeOr(kind.MediaType()), len(body))
	if err != nil {
		return nil, err
	}

	return &Response{
		head: h,
		body: body,
	}, nil
}

// Body returns the rendered body.
func (r *Response) Body() []byte {
	return r.body
}

// Send transmits the response. Any channel failure is returned as is, wrapped with
// errors.ErrTransport. Partially transmitted responses aren't retried.
func (r *Response) Send(ctx context.Context, ch transport.Channel) error {
	if err := r.start(ctx, ch); err != nil {
		return err
	}

	return send(ctx, ch, transport.Body(r.body, false))
}
