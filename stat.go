package respond

import (
	"crypto/md5"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/indigo-web/respond/fsys"
	"github.com/indigo-web/respond/http/headers"
)

// Stat is the file metadata used to derive cache validation headers.
type Stat = fsys.Stat

var zoneGMT = time.FixedZone("GMT", 0)

// setCacheHeaders sets Content-Length, Last-Modified and ETag unless already present.
func setCacheHeaders(h *headers.Headers, stat Stat) {
	h.SetDefault(headers.ContentLength, strconv.FormatInt(stat.Size, 10))
	h.SetDefault(headers.LastModified, HTTPDate(stat.ModTime))
	h.SetDefault(headers.ETag, ETag(stat))
}

// HTTPDate formats the seconds since the epoch as an RFC 1123 date in GMT. The fractional
// part is discarded.
func HTTPDate(seconds float64) string {
	return time.Unix(int64(math.Floor(seconds)), 0).In(zoneGMT).Format(time.RFC1123)
}

// ETag returns the fingerprint of the file metadata: hex-encoded MD5 of "<mtime>-<size>".
// It doesn't depend on the file content, so different files of the same size and
// modification time share the tag.
func ETag(stat Stat) string {
	base := formatSeconds(stat.ModTime) + "-" + strconv.FormatInt(stat.Size, 10)
	sum := md5.Sum([]byte(base))

	return hex.EncodeToString(sum[:])
}

// formatSeconds renders the shortest decimal representation having at least one
// fractional digit, e.g. 1000.0 or 1712.25.
func formatSeconds(seconds float64) string {
	str := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.ContainsRune(str, '.') {
		str += ".0"
	}

	return str
}
