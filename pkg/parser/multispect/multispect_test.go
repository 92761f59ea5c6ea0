package multispect

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/uniplot/pkg/errors"
)

const header = "$SPEC_REM:\nMulti-Spect\n"

const spectrumBody = `$DATE_MEA:
01/02/2020 10:00:00
$MEAS_TIM:
10 12
$DATA:
0 4
10
20
30
40
50
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMatchSignatureConsumesTwoLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
		rest  string
	}{
		{"match", header + "third\n", true, "third\n"},
		{"surrounding whitespace", " $SPEC_REM: \r\nMulti-Spect\r\nthird\n", true, "third\n"},
		{"wrong product", "$SPEC_REM:\nOther\nthird\nfourth\n", false, "third\nfourth\n"},
		{"wrong first line", "title: x\naxes: y\nthird\n", false, "third\n"},
		{"signature swapped", "Multi-Spect\n$SPEC_REM:\nthird\n", false, "third\n"},
		{"short file", "$SPEC_REM:\n", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.input))
			if got := matchSignature(r); got != tt.want {
				t.Errorf("matchSignature() = %v, want %v", got, tt.want)
			}
			rest, _ := io.ReadAll(r)
			if string(rest) != tt.rest {
				t.Errorf("remaining input = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestMatchSignatureLongLine(t *testing.T) {
	long := strings.Repeat("a", 64<<10)
	r := bufio.NewReaderSize(strings.NewReader(long), 4096)
	if matchSignature(r) {
		t.Fatal("matchSignature() = true for a line without newline")
	}
	rest, _ := io.ReadAll(r)
	if consumed := len(long) - len(rest); consumed > 2*4096 {
		t.Errorf("consumed %d bytes, want at most two buffers", consumed)
	}
}

func TestParser_ClaimRejectsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plot.yml", "title: not a spectrum\naxes: {x: [1], y: [1]}\n")

	dec, ok, err := (&Parser{}).Claim(path)
	if err != nil {
		t.Fatalf("Claim error: %v", err)
	}
	if ok || dec != nil {
		t.Errorf("Claim = %v, %v; want not claimed", dec, ok)
	}
}

func TestParser_OpenRejectsUnsignedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spectrum.Spe", "hello\nworld\n")

	_, err := (&Parser{}).Open(path)
	if !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("Open error = %v, want MALFORMED_INPUT", err)
	}
}

func TestParser_DecodeChannels(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spectrum.Spe", header+spectrumBody)

	dec, ok, err := (&Parser{}).Claim(path)
	if err != nil || !ok {
		t.Fatalf("Claim = %v, %v", ok, err)
	}
	defer dec.Close()

	doc, err := dec.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := `{axes:[{x:[0,1,2,3,4],y:[1,2,3,4,5]}],labels:{x:"Channel",y:"Intensity (s⁻¹)"}}`
	if got := doc.String(); got != want {
		t.Errorf("doc = %s\nwant  %s", got, want)
	}
}

func TestParser_DecodeEnergyFitAndSettings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "spectrum.Spe", header+spectrumBody+"$ROI:\n0\n$ENER_FIT:\n2.0 1.0\n")
	writeFile(t, dir, "spectrum", "[Plot]\nTitle = Cs-137\nLowX = 3\nHighX = 9\n")

	dec, ok, err := (&Parser{}).Claim(path)
	if err != nil || !ok {
		t.Fatalf("Claim = %v, %v", ok, err)
	}
	defer dec.Close()

	doc, err := dec.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// Energies are 1,3,5,7,9; the bounds are exclusive.
	want := `{axes:[{x:[5,7],y:[3,4]}],labels:{x:"Energy (keV)",y:"Intensity (s⁻¹)"},title:"Cs-137"}`
	if got := doc.String(); got != want {
		t.Errorf("doc = %s\nwant  %s", got, want)
	}
}

func TestParser_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no measurement time", "$DATA:\n0 0\n1\n"},
		{"eof before measurement time", "$DATE_MEA:\nyesterday\n"},
		{"no data marker", "$MEAS_TIM:\n10 10\n$ENER_FIT:\n1 0\n"},
		{"bad time", "$MEAS_TIM:\nten\n$DATA:\n0 0\n1\n"},
		{"zero time", "$MEAS_TIM:\n0 0\n$DATA:\n0 0\n1\n"},
		{"bad range", "$MEAS_TIM:\n10\n$DATA:\n4 0\n"},
		{"truncated counts", "$MEAS_TIM:\n10\n$DATA:\n0 3\n1\n2\n"},
		{"huge range", "$MEAS_TIM:\n10 10\n$DATA:\n0 4000000000\n1\n2\n"},
		{"overflowing range", "$MEAS_TIM:\n10 10\n$DATA:\n-9223372036854775808 9223372036854775807\n1\n"},
		{"bad count", "$MEAS_TIM:\n10\n$DATA:\n0 1\n1\nx\n"},
		{"bad energy fit", "$MEAS_TIM:\n10\n$DATA:\n0 0\n1\n$ENER_FIT:\nslope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "spectrum.Spe", header+tt.body)
			dec, err := (&Parser{}).Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer dec.Close()

			if _, err := dec.Decode(); !errors.Is(err, errors.ErrCodeMalformedInput) {
				t.Errorf("Decode error = %v, want MALFORMED_INPUT", err)
			}
		})
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()

	s, err := loadSettings(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if s.Title != "" || s.LowX != nil || s.HighX != nil {
		t.Errorf("missing file settings = %+v, want empty", s)
	}

	other := writeFile(t, dir, "other", "[Display]\nTitle = ignored\n")
	s, err = loadSettings(other)
	if err != nil {
		t.Fatalf("no Plot section: %v", err)
	}
	if s.Title != "" {
		t.Errorf("Title = %q, want empty", s.Title)
	}

	bad := writeFile(t, dir, "bad", "[Plot]\nLowX = low\n")
	if _, err := loadSettings(bad); !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("bad LowX error = %v, want MALFORMED_INPUT", err)
	}

	low := writeFile(t, dir, "low", "[Plot]\nlowx = 1.5\n")
	s, err = loadSettings(low)
	if err != nil {
		t.Fatal(err)
	}
	if s.LowX == nil || *s.LowX != 1.5 || s.HighX != nil {
		t.Errorf("settings = %+v, want LowX=1.5 only", s)
	}
}
