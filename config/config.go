package config

import (
	"time"

	"github.com/indigo-web/respond/http/mime"
)

type (
	Response struct {
		// Charset is used to encode textual bodies and is appended as a parameter to
		// the Content-Type of textual media types.
		Charset mime.Charset `yaml:"charset"`
	}

	File struct {
		// ChunkSize is how many bytes are read from a file at once. Every chunk is
		// transmitted as a separate body message.
		ChunkSize int `yaml:"chunkSize"`
		// DefaultMIME is used when the media type can't be guessed from the file name.
		DefaultMIME mime.MIME `yaml:"defaultMIME"`
	}

	Server struct {
		// Addr is the listening address. A leading colon means all interfaces.
		Addr string `yaml:"addr"`
		// Root is a directory served by the file server.
		Root string `yaml:"root"`
		// BandwidthKBps limits outbound body bandwidth per response. Zero disables the limit.
		BandwidthKBps int `yaml:"bandwidthKBps" test:"nullable"`
		// ShutdownTimeout controls how long in-flight responses may take to finish.
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	}
)

// Config holds settings used across responses and the demo file server.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because zero chunk size or empty charset are not valid.
type Config struct {
	Response Response `yaml:"response"`
	File     File     `yaml:"file"`
	Server   Server   `yaml:"server"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Response: Response{
			Charset: mime.UTF8,
		},
		File: File{
			ChunkSize:   4096,
			DefaultMIME: mime.Plain,
		},
		Server: Server{
			Addr:            ":8080",
			Root:            ".",
			BandwidthKBps:   0,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
