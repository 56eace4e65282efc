package respond

import (
	"context"
	"strconv"
	"strings"

	"github.com/indigo-web/respond/errors"
	"github.com/indigo-web/respond/http/headers"
	"github.com/indigo-web/respond/http/mime"
	"github.com/indigo-web/respond/http/status"
	"github.com/indigo-web/respond/transport"
)

// unknownLength is passed to synthesize by variants having no fixed body.
const unknownLength = -1

// reserved space for headers, which may be set after the synthesis: content disposition
// and three cache validation headers.
const preallocSpare = 4

// head is the metadata common to every response variant.
type head struct {
	kind      Kind
	code      status.Code
	mediaType mime.MIME
	charset   mime.Charset
	headers   *headers.Headers
}

func newHead(kind Kind, o options, mediaType mime.MIME, length int) (head, error) {
	h := head{
		kind:      kind,
		code:      o.code,
		mediaType: mediaType,
		charset:   o.charset,
	}

	var err error
	h.headers, err = synthesize(o.headers, length, mediaType, o.charset)

	return h, err
}

// synthesize builds the header sequence which is going to be transmitted. Explicitly passed
// headers are lower-cased and go first in insertion order. Content-Length is appended
// if the length is known, Content-Type if the media type is set, each of them only unless
// passed explicitly. Textual media types get the charset parameter unless they already
// carry parameters.
func synthesize(
	explicit *headers.Headers, length int, mediaType mime.MIME, charset mime.Charset,
) (*headers.Headers, error) {
	var (
		populateLength = true
		populateType   = true
		result         *headers.Headers
	)

	if explicit == nil {
		result = headers.NewPrealloc(2 + preallocSpare)
	} else {
		result = headers.NewPrealloc(explicit.Len() + 2 + preallocSpare)

		for key, value := range explicit.Iter() {
			key, err := latin1(strings.ToLower(key))
			if err != nil {
				return nil, err
			}

			value, err = latin1(value)
			if err != nil {
				return nil, err
			}

			result.Add(key, value)
		}

		populateLength = !result.Has(headers.ContentLength)
		populateType = !result.Has(headers.ContentType)
	}

	if length != unknownLength && populateLength {
		result.Add(headers.ContentLength, strconv.Itoa(length))
	}

	if mediaType != mime.Unset && populateType {
		contentType := mediaType
		if _, parametrized := mime.Params(mediaType); mime.Textual(mediaType) && !parametrized {
			contentType += "; charset=" + charset
		}

		contentType, err := latin1(contentType)
		if err != nil {
			return nil, err
		}

		result.Add(headers.ContentType, contentType)
	}

	return result, nil
}

// Code returns the status code.
func (h *head) Code() status.Code {
	return h.code
}

// Kind returns the response variant.
func (h *head) Kind() Kind {
	return h.kind
}

// MediaType returns the media type, which is possibly unset.
func (h *head) MediaType() mime.MIME {
	return h.mediaType
}

// Charset returns the charset used to encode textual content.
func (h *head) Charset() mime.Charset {
	return h.charset
}

// Headers returns the header sequence, which is going to be transmitted. Every mutation
// made via it is visible on the wire, so values must be byte-level (latin-1) strings.
func (h *head) Headers() *headers.Headers {
	return h.headers
}

func (h *head) start(ctx context.Context, ch transport.Channel) error {
	return send(ctx, ch, transport.Start(h.code, h.headers.Expose()))
}

func send(ctx context.Context, ch transport.Channel, msg transport.Message) error {
	if err := ch.Send(ctx, msg); err != nil {
		return errors.Wrap(errors.ErrTransport, err)
	}

	return nil
}
