package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/model"
	"github.com/matzehuels/uniplot/pkg/style"
)

func testGraph(n int, share bool) *model.Graph {
	g := &model.Graph{Title: "Runs", Share: share}
	for i := 0; i < n; i++ {
		g.Plots = append(g.Plots, &model.Plot{
			Title:  "plot",
			Labels: model.Labels{X: "Energy (keV)", Y: "Counts"},
			Series: []*model.Series{
				{Label: "data", X: []float64{1, 2, 3}, Y: []float64{2, 4, 9}, YErr: []float64{0.2, 0.4, 0.9}},
				{X: []float64{1, 2, 3}, Y: []float64{1, 4, 9}},
			},
		})
	}
	return g
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.pdf", "pdf", false},
		{"dir/out.SVG", "svg", false},
		{"out.tiff", "tiff", false},
		{"out.jpeg", "jpeg", false},
		{"out", "", true},
		{"out.bmp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFor(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeRenderFailed) {
				t.Errorf("FormatFor(%q) code = %s, want RENDER_FAILED", tt.path, errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plot.yml", "plot.pdf"},
		{"data/spectrum.Spe", "data/spectrum.pdf"},
		{"noext", "noext.pdf"},
		{"a.b.toml", "a.b.pdf"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormats(t *testing.T) {
	fs := Formats()
	for _, f := range []string{"pdf", "svg", "png", "eps"} {
		if !supported(f) {
			t.Errorf("%s not supported", f)
		}
	}
	fs[0] = "changed"
	if Formats()[0] == "changed" {
		t.Error("Formats exposes its backing slice")
	}
}

func TestUnlabeled(t *testing.T) {
	inner := plot.DefaultTicks{}
	want := inner.Ticks(0, 10)
	got := unlabeled{inner}.Ticks(0, 10)

	if len(got) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Value != want[i].Value {
			t.Errorf("tick %d at %v, want %v", i, got[i].Value, want[i].Value)
		}
		if got[i].Label != "" {
			t.Errorf("tick %d has label %q", i, got[i].Label)
		}
	}
}

func TestErrorPoints(t *testing.T) {
	e := errorPoints{xerr: []float64{0.5}, yerr: []float64{2}}
	if lo, hi := e.XError(0); lo != 0.5 || hi != 0.5 {
		t.Errorf("XError = %v,%v, want symmetric 0.5", lo, hi)
	}
	if lo, hi := e.YError(0); lo != 2 || hi != 2 {
		t.Errorf("YError = %v,%v, want symmetric 2", lo, hi)
	}
}

func TestWrite_SVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testGraph(4, true), style.Default(), "svg"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("output is not SVG")
	}
}

func TestWrite_AllBuiltinStyles(t *testing.T) {
	for _, name := range style.BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			st, _ := style.Builtin(name)
			var buf bytes.Buffer
			if err := Write(&buf, testGraph(3, true), st, "svg", WithFigureHeight(3)); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("empty output")
			}
		})
	}
}

func TestWrite_Errors(t *testing.T) {
	nan := &model.Graph{Plots: []*model.Plot{{
		Series: []*model.Series{{X: []float64{1}, Y: []float64{math.NaN()}}},
	}}}

	tests := []struct {
		name   string
		g      *model.Graph
		format string
	}{
		{"no plots", &model.Graph{}, "svg"},
		{"bad format", testGraph(1, false), "bmp"},
		{"nan value", nan, "svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Write(&bytes.Buffer{}, tt.g, style.Default(), tt.format)
			if !errors.Is(err, errors.ErrCodeRenderFailed) {
				t.Errorf("Write error = %v, want RENDER_FAILED", err)
			}
		})
	}
}

func TestSave_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(testGraph(1, false), style.Default(), path, WithFigureHeight(2)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestSave_NothingWrittenOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := Save(&model.Graph{}, style.Default(), path); err == nil {
		t.Fatal("Save succeeded, want error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("output exists after failed render")
	}
}
