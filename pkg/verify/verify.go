// Package verify provides checksum verification and raster inspection for
// persisted certificate files.
//
// These utilities answer yes/no and fact-lookup questions about files that
// are already untrusted, so they deliberately swallow every failure and
// report false or absence instead of raising.
package verify

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"

	// raster decoders for Inspect
	_ "image/jpeg"
	_ "image/png"

	"github.com/mhartmer/certforge/pkg/pipeline"
)

// Verify recomputes the checksum of the file at path and compares it to
// expected. It returns false, never an error, when the file is missing,
// unreadable, or its digest differs.
func Verify(path, expected string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return pipeline.Checksum(data) == expected
}

// Info describes the basic raster facts of a persisted certificate.
type Info struct {
	Width    int
	Height   int
	FileSize int64
	Format   string // derived from the file extension
	Checksum string
}

// Inspect decodes the file at path as a raster image and returns its facts.
// The second return is false on any I/O or decode failure.
func Inspect(path string) (Info, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, false
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, false
	}

	return Info{
		Width:    cfg.Width,
		Height:   cfg.Height,
		FileSize: int64(len(data)),
		Format:   strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		Checksum: pipeline.Checksum(data),
	}, true
}
