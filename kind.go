package respond

import "github.com/indigo-web/respond/http/mime"

// Kind tells response variants apart. Each kind carries its own default media type, which
// can be overridden at construction.
type Kind uint8

const (
	// KindCustom has no default media type, so Content-Type isn't populated unless one
	// is passed explicitly.
	KindCustom Kind = iota
	KindHTML
	KindPlainText
	KindJSON
	KindYAML
	KindStreaming
	KindFile
)

// MediaType returns the default media type of the kind. KindFile has none, as it's guessed
// from the file name.
func (k Kind) MediaType() mime.MIME {
	switch k {
	case KindHTML:
		return mime.HTML
	case KindPlainText:
		return mime.Plain
	case KindJSON:
		return mime.JSON
	case KindYAML:
		return mime.YAML
	default:
		return mime.Unset
	}
}

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindHTML:
		return "html"
	case KindPlainText:
		return "plain text"
	case KindJSON:
		return "json"
	case KindYAML:
		return "yaml"
	case KindStreaming:
		return "streaming"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}
