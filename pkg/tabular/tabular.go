// Package tabular reads numeric columns from delimited text files.
//
// Axis values in plot descriptions may reference a file column with the
// syntax "path:column[:skiprows]". Files ending in .csv are comma
// delimited; everything else is split on whitespace. Blank lines and text
// after '#' are ignored; skiprows counts raw lines from the top of the file.
package tabular

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/observability"
)

const cacheKeyType = "tabular"

// DefaultCacheSize is the number of parsed files a Reader keeps.
const DefaultCacheSize = 16

// Ref is a parsed "path:column[:skiprows]" file reference.
type Ref struct {
	Path   string
	Column int
	Skip   int
}

// ParseRef parses a file reference.
func ParseRef(s string) (Ref, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return Ref{}, errors.New(errors.ErrCodeInvalidAxisSpec, "invalid file reference %q (want path:column[:skiprows])", s)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil || col < 0 {
		return Ref{}, errors.New(errors.ErrCodeInvalidAxisSpec, "invalid column %q in file reference %q", parts[1], s)
	}
	ref := Ref{Path: parts[0], Column: col}
	if len(parts) == 3 {
		skip, err := strconv.Atoi(parts[2])
		if err != nil || skip < 0 {
			return Ref{}, errors.New(errors.ErrCodeInvalidAxisSpec, "invalid skiprows %q in file reference %q", parts[2], s)
		}
		ref.Skip = skip
	}
	return ref, nil
}

// String formats the reference in its source syntax.
func (r Ref) String() string {
	if r.Skip > 0 {
		return fmt.Sprintf("%s:%d:%d", r.Path, r.Column, r.Skip)
	}
	return fmt.Sprintf("%s:%d", r.Path, r.Column)
}

// Delimiter returns ',' for .csv files and 0 (any whitespace) otherwise.
func (r Ref) Delimiter() rune {
	if strings.EqualFold(filepath.Ext(r.Path), ".csv") {
		return ','
	}
	return 0
}

// Reader loads columns, resolving relative paths against a base directory.
// Files are split into fields once and memoized, so several columns of the
// same file cost a single read. A Reader is meant to live for one render.
type Reader struct {
	baseDir string
	lines   *lru.Cache[string, [][]string]
}

// NewReader returns a Reader resolving relative paths against baseDir.
func NewReader(baseDir string) *Reader {
	cache, err := lru.New[string, [][]string](DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return &Reader{baseDir: baseDir, lines: cache}
}

// Resolve returns the file system path for ref.
func (r *Reader) Resolve(ref Ref) string {
	if filepath.IsAbs(ref.Path) || r.baseDir == "" {
		return ref.Path
	}
	return filepath.Join(r.baseDir, ref.Path)
}

// ColumnString parses s as a file reference and loads the column.
func (r *Reader) ColumnString(s string) ([]float64, error) {
	ref, err := ParseRef(s)
	if err != nil {
		return nil, err
	}
	return r.Column(ref)
}

// Column loads the referenced column as floats.
func (r *Reader) Column(ref Ref) ([]float64, error) {
	path := r.Resolve(ref)
	rows, err := r.rows(path, ref.Delimiter())
	if err != nil {
		return nil, err
	}
	if ref.Skip > len(rows) {
		return []float64{}, nil
	}

	out := make([]float64, 0, len(rows)-ref.Skip)
	for i, fields := range rows[ref.Skip:] {
		if fields == nil {
			continue
		}
		line := ref.Skip + i + 1
		if ref.Column >= len(fields) {
			return nil, errors.New(errors.ErrCodeMalformedInput, "%s:%d: no column %d", path, line, ref.Column)
		}
		f, err := strconv.ParseFloat(fields[ref.Column], 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s:%d: column %d", path, line, ref.Column)
		}
		out = append(out, f)
	}
	return out, nil
}

// rows returns one entry per raw line of the file: the split fields, or nil
// for lines without data.
func (r *Reader) rows(path string, delim rune) ([][]string, error) {
	key := string(delim) + "\x00" + path
	if rows, ok := r.lines.Get(key); ok {
		observability.Cache().OnCacheHit(context.Background(), cacheKeyType)
		return rows, nil
	}
	observability.Cache().OnCacheMiss(context.Background(), cacheKeyType)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s does not exist", path)
		}
		return nil, err
	}
	defer f.Close()

	var rows [][]string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		fields, err := split(sc.Text(), delim)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s:%d", path, len(rows)+1)
		}
		rows = append(rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	r.lines.Add(key, rows)
	observability.Cache().OnCacheSet(context.Background(), cacheKeyType, len(rows))
	return rows, nil
}

// split returns the fields of one line, or nil when the line holds no data.
// Whitespace lines are split on runs of blanks; delimited lines are read as
// one CSV record, so quoted fields may contain the delimiter or '#'.
func split(line string, delim rune) ([]string, error) {
	line = stripComment(line, delim != 0)
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	if delim == 0 {
		return strings.Fields(line), nil
	}

	rd := csv.NewReader(strings.NewReader(line))
	rd.Comma = delim
	rd.TrimLeadingSpace = true
	rd.FieldsPerRecord = -1
	fields, err := rd.Read()
	if err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

// stripComment cuts line at the first '#', ignoring those inside double
// quotes when quoted is set.
func stripComment(line string, quoted bool) string {
	in := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			if quoted {
				in = !in
			}
		case '#':
			if !in {
				return line[:i]
			}
		}
	}
	return line
}
