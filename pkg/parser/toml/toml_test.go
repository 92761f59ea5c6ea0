package toml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/uniplot/pkg/errors"
)

func TestParser_Claim(t *testing.T) {
	p := &Parser{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"plot.toml", true},
		{"Plot.TOML", true},
		{"plot.yml", false},
		{"Cargo.lock", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			_, ok, err := p.Claim(tt.filename)
			if err != nil {
				t.Fatalf("Claim(%q) error: %v", tt.filename, err)
			}
			if ok != tt.want {
				t.Errorf("Claim(%q) = %v, want %v", tt.filename, ok, tt.want)
			}
		})
	}
}

func TestParser_Decode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.toml")
	content := `title = "Two plots"
share = false

[[plots]]
title = "left"
[plots.axes]
x = [1, 2, 3]
y = [1.5, 2.5, 3.5]
legend = "measured"

[[plots]]
title = "right"
[[plots.axes]]
x = "data.txt:0"
y = { values = "data.txt:1", errors = "data.txt:2" }
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	dec, err := (&Parser{}).Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()

	doc, err := dec.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := `{plots:[{axes:{legend:"measured",x:[1,2,3],y:[1.5,2.5,3.5]},title:"left"},` +
		`{axes:[{x:"data.txt:0",y:{errors:"data.txt:2",values:"data.txt:1"}}],title:"right"}],share:false,title:"Two plots"}`
	if got := doc.String(); got != want {
		t.Errorf("doc = %s\nwant  %s", got, want)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("title = "))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Decode error = %v, want INVALID_INPUT", err)
	}
}
