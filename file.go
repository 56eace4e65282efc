package respond

import (
	"context"
	"io"

	"github.com/indigo-web/respond/fsys"
	"github.com/indigo-web/respond/http/headers"
	"github.com/indigo-web/respond/http/mime"
	"github.com/indigo-web/respond/transport"
)

// File transmits a file from the filesystem chunk by chunk. Cache validation headers are
// derived from the file metadata, either passed at construction or requested right before
// the transmission.
type File struct {
	head
	path      string
	filename  string
	stat      *Stat
	fs        fsys.FS
	chunkSize int
}

// NewFile returns a response serving the file at the path. Neither existence nor
// readability of the file is checked here: filesystem errors are returned by Send.
//
// Unless passed explicitly, the media type is guessed by the extension of the filename
// (if set) or the path, falling back to text/plain.
func NewFile(path string, opts ...Option) (*File, error) {
	o := newOptions(opts)

	mediaType := o.mediaType
	if !o.mediaTypeSet {
		name := o.filename
		if len(name) == 0 {
			name = path
		}

		var found bool
		if mediaType, found = mime.Guess(name); !found {
			mediaType = o.defaultMIME
		}
	}

	h, err := newHead(KindFile, o, mediaType, unknownLength)
	if err != nil {
		return nil, err
	}

	f := &File{
		head:      h,
		path:      path,
		filename:  o.filename,
		fs:        o.fs,
		chunkSize: o.chunkSize,
	}

	if len(f.filename) > 0 {
		disposition, err := latin1(`attachment; filename="` + f.filename + `"`)
		if err != nil {
			return nil, err
		}

		f.headers.SetDefault(headers.ContentDisposition, disposition)
	}

	if o.stat != nil {
		f.setStat(*o.stat)
	}

	return f, nil
}

// Path returns the path of the served file.
func (f *File) Path() string {
	return f.path
}

// Stat returns the file metadata, if already known.
func (f *File) Stat() (Stat, bool) {
	if f.stat == nil {
		return Stat{}, false
	}

	return *f.stat, true
}

func (f *File) setStat(stat Stat) {
	f.stat = &stat
	setCacheHeaders(f.headers, stat)
}

// Send transmits the file. If the metadata wasn't passed at construction, it's requested
// now, so the cache validation headers reflect the state of the file right before the
// transmission.
//
// Every chunk is sent as a non-terminal body message except the last one, which is
// detected by a short read and is possibly empty. The file is closed on every exit path.
func (f *File) Send(ctx context.Context, ch transport.Channel) (err error) {
	if f.stat == nil {
		stat, err := f.fs.Stat(ctx, f.path)
		if err != nil {
			return err
		}

		f.setStat(stat)
	}

	if err = f.start(ctx, ch); err != nil {
		return err
	}

	file, err := f.fs.Open(ctx, f.path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	buff := make([]byte, f.chunkSize)

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		n, rerr := io.ReadFull(file, buff)
		more := true

		switch rerr {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			more = false
		default:
			return rerr
		}

		if err = send(ctx, ch, transport.Body(buff[:n], more)); err != nil {
			return err
		}

		if !more {
			return nil
		}
	}
}
