package render

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/uniplot/pkg/errors"
)

// DefaultFormat is used for output paths derived from the input name.
const DefaultFormat = "pdf"

var formats = []string{"eps", "jpeg", "jpg", "pdf", "png", "svg", "tex", "tif", "tiff"}

// Formats returns the supported output formats.
func Formats() []string {
	return slices.Clone(formats)
}

// FormatFor returns the output format for path from its extension.
func FormatFor(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", errors.New(errors.ErrCodeRenderFailed, "output %s has no extension (want one of %s)", path, strings.Join(formats, ", "))
	}
	if !supported(ext) {
		return "", errors.New(errors.ErrCodeRenderFailed, "unsupported output format %q (want one of %s)", ext, strings.Join(formats, ", "))
	}
	return ext, nil
}

// OutputPath returns the default output path for an input file: the input
// path with its extension replaced by .pdf.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + DefaultFormat
}

func supported(format string) bool {
	_, ok := slices.BinarySearch(formats, format)
	return ok
}
