package respond

import (
	"unicode/utf8"

	"github.com/indigo-web/respond/errors"
	"github.com/indigo-web/respond/http/mime"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// Body is either Bytes or Text. No other implementations are possible.
type Body interface {
	render(charset mime.Charset) ([]byte, error)
}

// Bytes is already encoded content, transmitted as is.
type Bytes []byte

func (b Bytes) render(mime.Charset) ([]byte, error) {
	return b, nil
}

// Text is content which is encoded with the response charset before transmission.
type Text string

func (t Text) render(charset mime.Charset) ([]byte, error) {
	return encodeText(string(t), charset)
}

func render(body Body, charset mime.Charset) ([]byte, error) {
	if body == nil {
		return nil, errors.Wrap(errors.ErrEncoding, errors.New("nil body"))
	}

	return body.render(charset)
}

func encodeText(text string, charset mime.Charset) ([]byte, error) {
	if strcomp.EqualFold(charset, mime.UTF8) || strcomp.EqualFold(charset, "utf8") {
		return []byte(text), nil
	}

	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, errors.Wrap(errors.ErrEncoding, err)
	}

	// the encoder doesn't modify its input, so the conversion is safe
	data, err := enc.NewEncoder().Bytes(uf.S2B(text))
	if err != nil {
		return nil, errors.Wrap(errors.ErrEncoding, err)
	}

	return data, nil
}

func lookupCharset(charset mime.Charset) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(charset); err == nil && enc != nil {
		return enc, nil
	}

	return htmlindex.Get(charset)
}

// latin1 converts the string into a byte-level string, where every byte represents exactly
// one latin-1 character. Strings which aren't valid UTF-8 are considered already byte-level
// and are returned as is, so headers taken from another response can be passed again.
func latin1(str string) (string, error) {
	for i := 0; i < len(str); i++ {
		if str[i] >= 0x80 {
			if !utf8.ValidString(str) {
				return str, nil
			}

			encoded, err := charmap.ISO8859_1.NewEncoder().String(str)
			if err != nil {
				return "", errors.Wrap(errors.ErrEncoding, err)
			}

			return encoded, nil
		}
	}

	return str, nil
}
