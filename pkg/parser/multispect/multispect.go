// Package multispect provides the parser for spectrum exports from Kromek
// Multi-Spect instruments.
//
// # File Format
//
// An export starts with the two-line signature
//
//	$SPEC_REM:
//	Multi-Spect
//
// followed by marker lines. uniplot reads the measurement time after
// $MEAS_TIM:, the channel block after $DATA: (a "start end" line, then one
// count per channel) and, if present, a linear energy calibration
// ("slope intercept") after $ENER_FIT:.
//
// # Claiming
//
// The signature lines cannot be re-derived from the rest of the file, so the
// claim check opens the file once, consumes exactly two lines and, on a
// match, hands the same buffered reader to the decoder. On a mismatch the
// file is closed immediately and nothing more is read.
//
// # Settings
//
// An INI file next to the export, named like the export without its
// extension, may hold a [Plot] section with LowX and HighX (exclusive x
// bounds) and Title keys. A missing settings file means no filtering.
package multispect

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/value"
)

// Name is the registry name of the parser.
const Name = "multispect"

// Signature lines and section markers.
const (
	signatureRemark  = "$SPEC_REM:"
	signatureProduct = "Multi-Spect"

	markerTime   = "$MEAS_TIM:"
	markerData   = "$DATA:"
	markerEnergy = "$ENER_FIT:"
)

// maxPreallocChannels bounds the capacity reserved from a channel range.
const maxPreallocChannels = 1 << 14

// Axis labels used in the decoded plot.
const (
	LabelChannel   = "Channel"
	LabelEnergy    = "Energy (keV)"
	LabelIntensity = "Intensity (s⁻¹)"
)

// Parser decodes Multi-Spect exports.
type Parser struct{}

// New returns a Multi-Spect parser. It never fails.
func New() (parser.Parser, error) { return &Parser{}, nil }

func (p *Parser) Name() string { return Name }

// Claim reads the first two lines of path and claims the file if they match
// the Multi-Spect signature.
func (p *Parser) Claim(path string) (parser.Decoder, bool, error) {
	d, ok, err := openSigned(path)
	if err != nil || !ok {
		return nil, false, err
	}
	return d, true, nil
}

// Open binds a decoder to path. Since the signature must still be consumed,
// a file without it is rejected as malformed.
func (p *Parser) Open(path string) (parser.Decoder, error) {
	d, ok, err := openSigned(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeMalformedInput, "%s is not a Multi-Spect export", path)
	}
	return d, nil
}

func openSigned(path string) (*decoder, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	r := bufio.NewReader(f)
	if !matchSignature(r) {
		f.Close()
		return nil, false, nil
	}
	return &decoder{path: path, file: f, r: r}, true, nil
}

// matchSignature consumes exactly two lines from r and compares them with
// the signature. A line longer than the reader's buffer is not a signature
// line, so files without newlines are never buffered whole.
func matchSignature(r *bufio.Reader) bool {
	first, ok1 := readSignatureLine(r)
	second, ok2 := readSignatureLine(r)
	return ok1 && ok2 && first == signatureRemark && second == signatureProduct
}

func readSignatureLine(r *bufio.Reader) (string, bool) {
	b, err := r.ReadSlice('\n')
	if err == io.EOF && len(b) > 0 {
		err = nil
	}
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

// readLine returns the next line without surrounding whitespace. ok is false
// at end of input.
func readLine(r *bufio.Reader) (line string, ok bool, err error) {
	s, err := r.ReadString('\n')
	if err == io.EOF {
		if s == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(s), true, nil
}

type decoder struct {
	path string
	file *os.File
	r    *bufio.Reader
}

func (d *decoder) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

func (d *decoder) Decode() (value.Value, error) {
	if d.file == nil {
		return value.Value{}, errors.New(errors.ErrCodeInternal, "%s was closed before decoding", d.path)
	}

	s, err := d.readSpectrum()
	if err != nil {
		return value.Value{}, err
	}

	var settings Settings
	if sp := settingsPath(d.path); sp != d.path {
		if settings, err = loadSettings(sp); err != nil {
			return value.Value{}, err
		}
	}
	s.filter(settings)

	plot := map[string]value.Value{
		"labels": value.Map(map[string]value.Value{
			"x": value.String(s.xLabel),
			"y": value.String(LabelIntensity),
		}),
		"axes": value.List(value.Map(map[string]value.Value{
			"x": value.Numbers(s.x),
			"y": value.Numbers(s.y),
		})),
	}
	if settings.Title != "" {
		plot["title"] = value.String(settings.Title)
	}
	return value.Map(plot), nil
}

type spectrum struct {
	x, y   []float64
	xLabel string
}

func (d *decoder) readSpectrum() (*spectrum, error) {
	if err := d.seek(markerTime, markerData); err != nil {
		return nil, err
	}
	seconds, err := d.readMeasurementTime()
	if err != nil {
		return nil, err
	}

	if err := d.seek(markerData, ""); err != nil {
		return nil, err
	}
	x, counts, err := d.readChannels()
	if err != nil {
		return nil, err
	}

	s := &spectrum{x: x, y: make([]float64, len(counts)), xLabel: LabelChannel}
	for i, c := range counts {
		s.y[i] = c / seconds
	}

	slope, intercept, found, err := d.readEnergyFit()
	if err != nil {
		return nil, err
	}
	if found {
		for i := range s.x {
			s.x[i] = slope*s.x[i] + intercept
		}
		s.xLabel = LabelEnergy
	}
	return s, nil
}

// seek advances past the line equal to marker. Reaching end of input, or a
// line equal to stop, is malformed input.
func (d *decoder) seek(marker, stop string) error {
	for {
		line, ok, err := readLine(d.r)
		if err != nil {
			return err
		}
		if !ok || (stop != "" && line == stop) {
			return errors.New(errors.ErrCodeMalformedInput, "%s: %q was not found", d.path, marker)
		}
		if line == marker {
			return nil
		}
	}
}

func (d *decoder) readMeasurementTime() (float64, error) {
	line, ok, err := readLine(d.r)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if !ok || len(fields) == 0 {
		return 0, errors.New(errors.ErrCodeMalformedInput, "%s: missing measurement time", d.path)
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: invalid measurement time", d.path)
	}
	if seconds <= 0 {
		return 0, errors.New(errors.ErrCodeMalformedInput, "%s: measurement time must be positive, got %g", d.path, seconds)
	}
	return seconds, nil
}

func (d *decoder) readChannels() (x, counts []float64, err error) {
	line, ok, err := readLine(d.r)
	if err != nil {
		return nil, nil, err
	}
	fields := strings.Fields(line)
	if !ok || len(fields) < 2 {
		return nil, nil, errors.New(errors.ErrCodeMalformedInput, "%s: missing channel range after %s", d.path, markerData)
	}
	start, err1 := strconv.Atoi(fields[0])
	end, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || end < start {
		return nil, nil, errors.New(errors.ErrCodeMalformedInput, "%s: invalid channel range %q", d.path, line)
	}

	n := end - start + 1
	if n <= 0 {
		return nil, nil, errors.New(errors.ErrCodeMalformedInput, "%s: invalid channel range %q", d.path, line)
	}
	// The range is untrusted; the slices grow with the lines actually read.
	x = make([]float64, 0, min(n, maxPreallocChannels))
	counts = make([]float64, 0, min(n, maxPreallocChannels))
	for i := 0; i < n; i++ {
		line, ok, err := readLine(d.r)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeMalformedInput, "%s: expected %d channels, found %d", d.path, n, i)
		}
		c, err := strconv.Atoi(line)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: invalid count for channel %d", d.path, start+i)
		}
		x = append(x, float64(start+i))
		counts = append(counts, float64(c))
	}
	return x, counts, nil
}

func (d *decoder) readEnergyFit() (slope, intercept float64, found bool, err error) {
	for {
		line, ok, err := readLine(d.r)
		if err != nil {
			return 0, 0, false, err
		}
		if !ok {
			return 0, 0, false, nil
		}
		if line != markerEnergy {
			continue
		}
		line, ok, err = readLine(d.r)
		if err != nil {
			return 0, 0, false, err
		}
		fields := strings.Fields(line)
		if !ok || len(fields) < 2 {
			return 0, 0, false, errors.New(errors.ErrCodeMalformedInput, "%s: missing energy calibration after %s", d.path, markerEnergy)
		}
		slope, err1 := strconv.ParseFloat(fields[0], 64)
		intercept, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return 0, 0, false, errors.New(errors.ErrCodeMalformedInput, "%s: invalid energy calibration %q", d.path, line)
		}
		return slope, intercept, true, nil
	}
}

func (s *spectrum) filter(set Settings) {
	if set.LowX == nil && set.HighX == nil {
		return
	}
	x := s.x[:0]
	y := s.y[:0]
	for i, xi := range s.x {
		if set.LowX != nil && !(*set.LowX < xi) {
			continue
		}
		if set.HighX != nil && !(xi < *set.HighX) {
			continue
		}
		x = append(x, xi)
		y = append(y, s.y[i])
	}
	s.x, s.y = x, y
}
