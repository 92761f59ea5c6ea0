package parsers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/value"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegistry_Order(t *testing.T) {
	reg, err := Registry([]parser.Entry{{Name: "dat", New: func() (parser.Parser, error) {
		return nil, fmt.Errorf("not installed")
	}}})
	if err != nil {
		t.Fatal(err)
	}

	got := strings.Join(reg.Names(), ",")
	want := "multispect,yaml,toml,dat,hip"
	if got != want {
		t.Errorf("Names() = %s, want %s", got, want)
	}
}

func TestRegistry_DuplicateUserPlugin(t *testing.T) {
	_, err := Registry([]parser.Entry{{Name: "yaml", New: func() (parser.Parser, error) { return nil, nil }}})
	if err == nil {
		t.Error("expected error for user plugin shadowing a built-in")
	}
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	spectrum := writeFile(t, dir, "spec.Spe", "$SPEC_REM:\nMulti-Spect\n$MEAS_TIM:\n1\n$DATA:\n0 0\n7\n")
	yml := writeFile(t, dir, "plot.yml", "axes: {x: [1], y: [2]}\n")
	tml := writeFile(t, dir, "plot.toml", "[axes]\nx = [1]\ny = [2]\n")
	unknown := writeFile(t, dir, "plot.xyz", "axes")

	reg, err := Registry(nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		hint     string
		want     string
		wantCode errors.Code
	}{
		{"signature", spectrum, "", "multispect", ""},
		{"yaml extension", yml, "", "yaml", ""},
		{"toml extension", tml, "", "toml", ""},
		{"hint overrides extension", tml, "toml", "toml", ""},
		{"unknown hint", yml, "csv", "", errors.ErrCodeUnknownParser},
		{"nothing claims", unknown, "", "", errors.ErrCodeNoParserFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, name, err := parser.Detect(reg, tt.path, tt.hint, log.New(&bytes.Buffer{}))
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Detect error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			defer dec.Close()
			if name != tt.want {
				t.Errorf("parser = %s, want %s", name, tt.want)
			}
			if _, err := dec.Decode(); err != nil {
				t.Errorf("Decode failed: %v", err)
			}
		})
	}
}

func TestDetect_SkipsParsersThatFailToLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plot.dat", "x")

	claimed := parser.Entry{Name: "dat", New: func() (parser.Parser, error) { return datParser{}, nil }}
	broken := parser.Entry{Name: "broken", New: func() (parser.Parser, error) {
		return nil, fmt.Errorf("missing dependency")
	}}
	reg, err := Registry([]parser.Entry{broken, claimed})
	if err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	dec, name, err := parser.Detect(reg, path, "", log.New(&logs))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	defer dec.Close()

	if name != "dat" {
		t.Errorf("parser = %s, want dat", name)
	}
	if got := strings.Count(logs.String(), "could not be loaded"); got != 1 {
		t.Errorf("got %d load warnings, want 1:\n%s", got, logs.String())
	}
}

type datParser struct{}

func (datParser) Name() string { return "dat" }

func (p datParser) Claim(path string) (parser.Decoder, bool, error) {
	if !parser.HasExt(path, ".dat") {
		return nil, false, nil
	}
	dec, err := p.Open(path)
	return dec, true, err
}

func (datParser) Open(string) (parser.Decoder, error) {
	return parser.DecodeFunc(func() (value.Value, error) { return value.Map(nil), nil }), nil
}
