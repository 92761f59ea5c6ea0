package style

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/uniplot/pkg/errors"
)

// SheetExt is the optional extension of stylesheet files.
const SheetExt = ".toml"

// sheet is the TOML form of a user stylesheet. Unset keys keep the value of
// the base style.
//
//	base = "ggplot"
//	background = "#ffffff"
//	palette = ["#e24a33", "#348abd"]
//	line_width = 2.0
type sheet struct {
	Base         string   `toml:"base"`
	Background   string   `toml:"background"`
	Foreground   string   `toml:"foreground"`
	Grid         *bool    `toml:"grid"`
	GridColor    string   `toml:"grid_color"`
	Palette      []string `toml:"palette"`
	LineWidth    *float64 `toml:"line_width"`
	MarkerRadius *float64 `toml:"marker_radius"`
	FontSize     *float64 `toml:"font_size"`
	FigureHeight *float64 `toml:"figure_height"`
}

// LoadSheet reads a TOML stylesheet and applies it over its base style,
// or over the default style when it names none.
func LoadSheet(path, name string) (Style, error) {
	var sh sheet
	md, err := toml.DecodeFile(path, &sh)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "stylesheet %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Style{}, errors.New(errors.ErrCodeInvalidStyle, "stylesheet %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	s := Default()
	if sh.Base != "" {
		base, ok := Builtin(sh.Base)
		if !ok {
			return Style{}, errors.New(errors.ErrCodeInvalidStyle, "stylesheet %s: unknown base style %q", path, sh.Base)
		}
		s = base
	}
	s.Name = name

	if err := sh.apply(&s); err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "stylesheet %s", path)
	}
	return s, nil
}

func (sh *sheet) apply(s *Style) error {
	colors := []struct {
		key string
		val string
		dst *color.Color
	}{
		{"background", sh.Background, &s.Background},
		{"foreground", sh.Foreground, &s.Foreground},
		{"grid_color", sh.GridColor, &s.GridColor},
	}
	for _, c := range colors {
		if c.val == "" {
			continue
		}
		col, err := parseColor(c.val)
		if err != nil {
			return fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = col
	}

	if sh.Palette != nil {
		if len(sh.Palette) == 0 {
			return fmt.Errorf("palette: empty")
		}
		s.Palette = make([]color.Color, len(sh.Palette))
		for i, h := range sh.Palette {
			col, err := parseColor(h)
			if err != nil {
				return fmt.Errorf("palette[%d]: %w", i, err)
			}
			s.Palette[i] = col
		}
	}

	if sh.Grid != nil {
		s.Grid = *sh.Grid
	}
	lengths := []struct {
		key string
		val *float64
		dst *float64
	}{
		{"line_width", sh.LineWidth, &s.LineWidth},
		{"marker_radius", sh.MarkerRadius, &s.MarkerRadius},
		{"font_size", sh.FontSize, &s.FontSize},
		{"figure_height", sh.FigureHeight, &s.FigureHeight},
	}
	for _, l := range lengths {
		if l.val == nil {
			continue
		}
		if *l.val <= 0 {
			return fmt.Errorf("%s: must be positive, got %v", l.key, *l.val)
		}
		*l.dst = *l.val
	}
	return nil
}

func parseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return nil, fmt.Errorf("invalid color %q (want #rgb or #rrggbb)", s)
	}
	return c, nil
}

// sheetPath returns the stylesheet for name in dir: a file named exactly
// name, or name with the .toml extension.
func sheetPath(dir, name string) (string, bool) {
	if dir == "" {
		return "", false
	}
	for _, candidate := range []string{name, name + SheetExt} {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// UserNames lists the stylesheets in dir, sorted. A missing directory has
// no stylesheets.
func UserNames(dir string) []string {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), SheetExt)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
