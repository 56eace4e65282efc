// Package fsys provides the filesystem primitives needed to transmit files: metadata lookup
// and sequential reading. Both honour the context before touching the filesystem.
package fsys

import (
	"context"
	"io"
	"io/fs"
	"os"
	"time"
)

// Stat is the part of file metadata used for cache validation.
type Stat struct {
	// Size in bytes.
	Size int64
	// ModTime is the modification time in seconds since the epoch, possibly fractional.
	ModTime float64
}

// StatOf extracts Stat from the file info.
func StatOf(info fs.FileInfo) Stat {
	return Stat{
		Size:    info.Size(),
		ModTime: Seconds(info.ModTime()),
	}
}

// Seconds converts time into fractional seconds since the epoch, rounded the same way as
// POSIX stat tools do: sec + nsec*1e-9.
func Seconds(t time.Time) float64 {
	// the conversion forbids fusing into a single FMA instruction
	return float64(t.Unix()) + float64(float64(t.Nanosecond())*1e-9)
}

// FS is the filesystem collaborator. Stat fails if the path doesn't exist; the error
// then matches fs.ErrNotExist.
type FS interface {
	Stat(ctx context.Context, path string) (Stat, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Default is the operating system's filesystem.
var Default FS = OS{}

// OS operates on the operating system's filesystem directly.
type OS struct{}

func (OS) Stat(ctx context.Context, path string) (Stat, error) {
	if err := ctx.Err(); err != nil {
		return Stat{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Stat{}, err
	}

	return StatOf(info), nil
}

func (OS) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return file, nil
}

type dir struct {
	fsys fs.FS
}

// FromFS adapts any fs.FS, e.g. embed.FS or fstest.MapFS. Paths must be valid in terms
// of fs.ValidPath.
func FromFS(fsys fs.FS) FS {
	return dir{fsys: fsys}
}

func (d dir) Stat(ctx context.Context, path string) (Stat, error) {
	if err := ctx.Err(); err != nil {
		return Stat{}, err
	}

	info, err := fs.Stat(d.fsys, path)
	if err != nil {
		return Stat{}, err
	}

	return StatOf(info), nil
}

func (d dir) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := d.fsys.Open(path)
	if err != nil {
		return nil, err
	}

	return file, nil
}
