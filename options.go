package respond

import (
	"github.com/indigo-web/respond/config"
	"github.com/indigo-web/respond/fsys"
	"github.com/indigo-web/respond/http/headers"
	"github.com/indigo-web/respond/http/mime"
	"github.com/indigo-web/respond/http/status"
)

type options struct {
	code         status.Code
	headers      *headers.Headers
	mediaType    mime.MIME
	mediaTypeSet bool
	charset      mime.Charset
	filename     string
	stat         *Stat
	fs           fsys.FS
	chunkSize    int
	defaultMIME  mime.MIME
}

// Option tunes a response at construction. Options which don't apply to the response
// variant are silently ignored.
type Option func(*options)

var defaults = config.Default()

func newOptions(opts []Option) options {
	o := options{
		code:        status.OK,
		charset:     defaults.Response.Charset,
		fs:          fsys.Default,
		chunkSize:   defaults.File.ChunkSize,
		defaultMIME: defaults.File.DefaultMIME,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) mediaTypeOr(def mime.MIME) mime.MIME {
	if o.mediaTypeSet {
		return o.mediaType
	}

	return def
}

// WithCode sets the status code. Defaults to 200 OK.
func WithCode(code status.Code) Option {
	return func(o *options) {
		o.code = code
	}
}

// WithHeaders passes explicitly set headers. They take precedence over any header which
// would be populated automatically. The headers are copied, so they may be reused.
//
// Keys and values may be either UTF-8, which is transcoded into latin-1, or already
// byte-level latin-1 (e.g. headers of another response), which is kept as is.
func WithHeaders(h *headers.Headers) Option {
	return func(o *options) {
		o.headers = h
	}
}

// WithMediaType overrides the default media type of the response. Passing mime.Unset
// disables the automatic Content-Type header.
func WithMediaType(m mime.MIME) Option {
	return func(o *options) {
		o.mediaType, o.mediaTypeSet = m, true
	}
}

// WithCharset overrides the charset, used for text encoding and Content-Type parameter.
func WithCharset(charset mime.Charset) Option {
	return func(o *options) {
		o.charset = charset
	}
}

// WithFilename makes the file be served as a downloadable attachment under the name.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithStat passes the file metadata in advance, so it won't be requested before
// transmission. The metadata is trusted and used as is.
func WithStat(stat Stat) Option {
	return func(o *options) {
		o.stat = &stat
	}
}

// WithFS replaces the filesystem, used to stat and read files.
func WithFS(fs fsys.FS) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithChunkSize sets how many bytes are read and transmitted at once. Non-positive values
// are ignored.
func WithChunkSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.chunkSize = size
		}
	}
}

// WithConfig applies charset, chunk size and default file media type from the config.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.charset = cfg.Response.Charset
		o.defaultMIME = cfg.File.DefaultMIME
		if cfg.File.ChunkSize > 0 {
			o.chunkSize = cfg.File.ChunkSize
		}
	}
}
