package parser

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/uniplot/pkg/value"
)

// Parser reads plot descriptions in one file format.
type Parser interface {
	// Name returns the registry name of the parser (e.g., "yaml").
	Name() string

	// Claim reports whether the parser handles the file at path. When it
	// does, the returned Decoder is bound to the file and must be closed by
	// the caller. A parser that does not claim the file returns (nil, false, nil)
	// and releases anything it opened.
	Claim(path string) (Decoder, bool, error)

	// Open binds a Decoder to path without a claim test. It is used when
	// the parser was selected explicitly by name.
	Open(path string) (Decoder, error)
}

// Decoder decodes one claimed file.
type Decoder interface {
	// Decode reads the file and returns its document tree.
	Decode() (value.Value, error)
	// Close releases the file, if one is held.
	Close() error
}

// DecodeFunc adapts a function to the Decoder interface for parsers that
// hold no file handle between claim and decode.
type DecodeFunc func() (value.Value, error)

// Decode calls f.
func (f DecodeFunc) Decode() (value.Value, error) { return f() }

// Close is a no-op.
func (f DecodeFunc) Close() error { return nil }

// HasExt reports whether path ends in one of exts (case-insensitive, with
// leading dot).
func HasExt(path string, exts ...string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
