package respond

import (
	"context"
	"io"
	"iter"

	"github.com/indigo-web/respond/errors"
	"github.com/indigo-web/respond/transport"
)

// Chunks is a lazy single-pass sequence of body chunks. A non-nil error aborts the
// transmission.
type Chunks = iter.Seq2[Body, error]

// Streaming transmits chunks as they are produced. Its length is unknown in advance,
// therefore Content-Length is never populated automatically.
type Streaming struct {
	head
	chunks   Chunks
	consumed bool
}

// Stream returns a response producing its body from the chunks. The media type is unset
// unless passed explicitly.
func Stream(chunks Chunks, opts ...Option) (*Streaming, error) {
	o := newOptions(opts)

	h, err := newHead(KindStreaming, o, o.mediaTypeOr(KindStreaming.MediaType()), unknownLength)
	if err != nil {
		return nil, err
	}

	return &Streaming{
		head:   h,
		chunks: chunks,
	}, nil
}

// Send transmits the start message, every produced chunk as a non-terminal body message
// and finally an empty terminal one. If either the channel fails or the context is done,
// the producer is abandoned without being drained. The chunks can be consumed only once,
// so repeated calls fail with errors.ErrProtocol.
func (s *Streaming) Send(ctx context.Context, ch transport.Channel) error {
	if s.consumed {
		return errors.Wrap(errors.ErrProtocol, errors.New("stream is already consumed"))
	}

	s.consumed = true

	if err := s.start(ctx, ch); err != nil {
		return err
	}

	if s.chunks != nil {
		for chunk, err := range s.chunks {
			if err != nil {
				return err
			}

			if err = ctx.Err(); err != nil {
				return err
			}

			data, err := render(chunk, s.charset)
			if err != nil {
				return err
			}

			if err = send(ctx, ch, transport.Body(data, true)); err != nil {
				return err
			}
		}
	}

	return send(ctx, ch, transport.Body(nil, false))
}

// FromSlice produces the passed chunks in order.
func FromSlice(chunks ...Body) Chunks {
	return func(yield func(Body, error) bool) {
		for _, chunk := range chunks {
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

// FromChannel produces chunks received from the channel until it's closed. If the context
// is done first, its error is produced.
func FromChannel(ctx context.Context, ch <-chan Body) Chunks {
	return func(yield func(Body, error) bool) {
		for {
			select {
			case <-ctx.Done():
				yield(nil, ctx.Err())
				return
			case chunk, ok := <-ch:
				if !ok || !yield(chunk, nil) {
					return
				}
			}
		}
	}
}

// FromReader produces chunks of at most chunkSize bytes read from the reader until io.EOF.
// The same buffer is reused for every chunk.
func FromReader(r io.Reader, chunkSize int) Chunks {
	if chunkSize <= 0 {
		chunkSize = defaults.File.ChunkSize
	}

	return func(yield func(Body, error) bool) {
		buff := make([]byte, chunkSize)

		for {
			n, err := r.Read(buff)
			if n > 0 && !yield(Bytes(buff[:n]), nil) {
				return
			}

			switch err {
			case nil:
			case io.EOF:
				return
			default:
				yield(nil, err)
				return
			}
		}
	}
}
