package serialize

import (
	"fmt"

	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Encoder serializes arbitrary values into their canonical text form.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// Decoder is the pair of an Encoder.
type Decoder interface {
	Decode(data []byte, v any) error
}

type Codec interface {
	Encoder
	Decoder
}

var (
	JSON Codec = jsonCodec{api: json.ConfigCompatibleWithStandardLibrary}
	YAML Codec = yamlCodec{}
)

type jsonCodec struct {
	api json.API
}

func (j jsonCodec) Encode(v any) ([]byte, error) {
	return j.api.Marshal(v)
}

func (j jsonCodec) Decode(data []byte, v any) error {
	return j.api.Unmarshal(data, v)
}

type yamlCodec struct{}

func (yamlCodec) Encode(v any) (data []byte, err error) {
	// the encoder panics on some of unsupported types instead of returning an error
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("yaml: %v", r)
		}
	}()

	return yaml.Marshal(v)
}

func (yamlCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
