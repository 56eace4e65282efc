package mime

import (
	"path/filepath"
	"strings"

	"github.com/indigo-web/respond/internal/strutil"
)

type MIME = string

// Unset denotes the absence of a media type. Responses with unset media type never get the
// Content-Type header populated automatically.
const Unset MIME = ""

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	CSV         MIME = "text/csv"
	Markdown    MIME = "text/markdown"
	XML         MIME = "text/xml"
	JAVASCRIPT  MIME = "text/javascript"
	JSON        MIME = "application/json"
	YAML        MIME = "application/yaml"
	PDF         MIME = "application/pdf"
	SQL         MIME = "application/sql"
	ZIP         MIME = "application/zip"
	GZIP        MIME = "application/gzip"
	ZLIB        MIME = "application/zlib"
	ZSTD        MIME = "application/zstd"
	WASM        MIME = "application/wasm"
	AVIF        MIME = "image/avif"
	GIF         MIME = "image/gif"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
	ICO         MIME = "image/vnd.microsoft.icon"
	WEBP        MIME = "image/webp"
	MP4         MIME = "video/mp4"
	WEBM        MIME = "video/webm"
	MP3         MIME = "audio/mpeg"
	WOFF2       MIME = "font/woff2"
)

const textual = "text/"

// Textual reports whether the primary type of the MIME implies character-encoded content,
// hence needs a charset parameter.
func Textual(mime MIME) bool {
	return strings.HasPrefix(mime, textual)
}

// Guess returns a MIME by the extension of the path. The lookup is case-insensitive. Second
// return value is false if the extension is unknown.
func Guess(path string) (MIME, bool) {
	ext := filepath.Ext(path)
	if len(ext) == 0 {
		return Unset, false
	}

	mime, found := Extension[strings.ToLower(ext)]
	return mime, found
}

// Params returns parameters of the MIME, e.g. `charset=koi8-r`. The second return value
// reports whether the parameters separator is present at all, even if the list is empty.
func Params(mime MIME) (params string, found bool) {
	if strings.IndexByte(mime, ';') == -1 {
		return "", false
	}

	_, params = strutil.CutHeader(mime)
	return params, true
}
