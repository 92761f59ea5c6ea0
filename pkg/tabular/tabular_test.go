package tabular

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/uniplot/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		input   string
		want    Ref
		wantErr bool
	}{
		{"data.csv:2:1", Ref{Path: "data.csv", Column: 2, Skip: 1}, false},
		{"data.txt:0", Ref{Path: "data.txt", Column: 0}, false},
		{"dir/data.dat:3:0", Ref{Path: "dir/data.dat", Column: 3}, false},

		{"data.csv", Ref{}, true},
		{":1", Ref{}, true},
		{"data.csv:x", Ref{}, true},
		{"data.csv:-1", Ref{}, true},
		{"data.csv:1:y", Ref{}, true},
		{"data.csv:1:2:3", Ref{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidAxisSpec) {
					t.Errorf("ParseRef(%q) code = %s, want INVALID_AXIS_SPEC", tt.input, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseRef(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRef_Delimiter(t *testing.T) {
	if d := (Ref{Path: "a.csv"}).Delimiter(); d != ',' {
		t.Errorf("csv delimiter = %q, want ','", d)
	}
	if d := (Ref{Path: "a.CSV"}).Delimiter(); d != ',' {
		t.Errorf("CSV delimiter = %q, want ','", d)
	}
	if d := (Ref{Path: "a.txt"}).Delimiter(); d != 0 {
		t.Errorf("txt delimiter = %q, want whitespace", d)
	}
}

func TestReader_CSVWithHeader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", "t,a,b\n0, 1.5 ,10\n1,2.5,20\n\n2,3.5,30\n")

	r := NewReader(dir)
	got, err := r.ColumnString("data.csv:2:1")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if want := []float64{10, 20, 30}; !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}

	got, err = r.ColumnString("data.csv:1:1")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if want := []float64{1.5, 2.5, 3.5}; !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}
}

func TestReader_CSVQuotedFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "runs.csv", "name,value\n\"run 1, warm\",1.5\n\"tag #2\",2.5 # rerun\n# all done\n")

	got, err := NewReader(dir).ColumnString("runs.csv:1:1")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if want := []float64{1.5, 2.5}; !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}

	writeFile(t, dir, "bad.csv", "\"open,1\n")
	if _, err := NewReader(dir).ColumnString("bad.csv:1"); !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("unterminated quote error = %v, want MALFORMED_INPUT", err)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{"whitespace", " 1\t2  3 ", 0, []string{"1", "2", "3"}},
		{"whitespace comment", "1 2 # x", 0, []string{"1", "2"}},
		{"comment only", "  # header", 0, nil},
		{"blank", "   ", ',', nil},
		{"csv trims", " 1 , 2 ", ',', []string{"1", "2"}},
		{"csv quoted delimiter", `"a,b",3`, ',', []string{"a,b", "3"}},
		{"csv quoted hash", `"a#b",3 # note`, ',', []string{"a#b", "3"}},
		{"csv ragged", "1,2,3", ',', []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := split(tt.line, tt.delim)
			if err != nil {
				t.Fatalf("split error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("split(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestReader_WhitespaceWithComments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.txt", "# energy counts\n1   100\n2\t200 # peak\n3 300\n")

	r := NewReader("/somewhere/else")
	got, err := r.Column(Ref{Path: path, Column: 1})
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if want := []float64{100, 200, 300}; !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}
}

func TestReader_Memoizes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.txt", "1 2\n3 4\n")

	r := NewReader(dir)
	if _, err := r.ColumnString("data.txt:0"); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	got, err := r.ColumnString("data.txt:1")
	if err != nil {
		t.Fatalf("second column should come from cache: %v", err)
	}
	if want := []float64{2, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("column = %v, want %v", got, want)
	}
}

func TestReader_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "short.txt", "1 2\n3\n")
	writeFile(t, dir, "text.txt", "1 a\n")

	tests := []struct {
		ref  string
		code errors.Code
	}{
		{"missing.txt:0", errors.ErrCodeFileNotFound},
		{"short.txt:1", errors.ErrCodeMalformedInput},
		{"text.txt:1", errors.ErrCodeMalformedInput},
		{"text.txt", errors.ErrCodeInvalidAxisSpec},
	}

	r := NewReader(dir)
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if _, err := r.ColumnString(tt.ref); !errors.Is(err, tt.code) {
				t.Errorf("ColumnString(%q) error = %v, want %s", tt.ref, err, tt.code)
			}
		})
	}
}

func TestReader_SkipPastEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.txt", "1\n2\n")

	got, err := NewReader(dir).ColumnString("data.txt:0:5")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("column = %v, want empty", got)
	}
}
