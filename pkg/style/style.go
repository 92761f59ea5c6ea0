// Package style resolves the visual style a graph is rendered with.
//
// A style name is looked up in three tiers: a user stylesheet in the style
// directory, then the built-in styles, then the default style. A name that
// matches neither of the first two tiers is reported with a single warning.
//
// Styles are plain values handed to the renderer. Nothing global changes
// when a style is resolved, so one render never affects the next.
package style

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultName is the name of the style used when none is requested.
const DefaultName = "default"

// Style describes the look of a rendered graph. Lengths are in points
// unless noted otherwise.
type Style struct {
	Name string

	Background color.Color // figure and plot area
	Foreground color.Color // axes, ticks and text
	Grid       bool
	GridColor  color.Color
	Palette    []color.Color // series colors, cycled

	LineWidth    float64
	MarkerRadius float64
	FontSize     float64 // tick labels; axis labels and titles are larger
	FigureHeight float64 // inches
}

// Color returns the palette color for the i-th series.
func (s Style) Color(i int) color.Color {
	if len(s.Palette) == 0 {
		return s.Foreground
	}
	return s.Palette[i%len(s.Palette)]
}

// LabelFontSize is the font size of axis labels.
func (s Style) LabelFontSize() float64 { return s.FontSize + 2 }

// TitleFontSize is the font size of plot titles.
func (s Style) TitleFontSize() float64 { return s.FontSize + 4 }

// Default returns the default style.
func Default() Style {
	return builtins[DefaultName]
}

// Builtin returns the built-in style with the given name.
func Builtin(name string) (Style, bool) {
	s, ok := builtins[name]
	return s, ok
}

// BuiltinNames returns the names of all built-in styles, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtins = map[string]Style{
	"default": {
		Name:       "default",
		Background: color.White,
		Foreground: color.Black,
		GridColor:  hex("#b0b0b0"),
		Palette: palette("#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"),
		LineWidth:    1.5,
		MarkerRadius: 3,
		FontSize:     10,
		FigureHeight: 4.8,
	},
	"classic": {
		Name:         "classic",
		Background:   color.White,
		Foreground:   color.Black,
		GridColor:    color.Black,
		Palette:      palette("#0000ff", "#008000", "#ff0000", "#00bfbf", "#bf00bf", "#bfbf00", "#000000"),
		LineWidth:    1,
		MarkerRadius: 3,
		FontSize:     12,
		FigureHeight: 6,
	},
	"ggplot": {
		Name:         "ggplot",
		Background:   hex("#e5e5e5"),
		Foreground:   hex("#555555"),
		Grid:         true,
		GridColor:    color.White,
		Palette:      palette("#e24a33", "#348abd", "#988ed5", "#777777", "#fbc15e", "#8eba42", "#ffb5b8"),
		LineWidth:    1.5,
		MarkerRadius: 3,
		FontSize:     10,
		FigureHeight: 4.8,
	},
	"grayscale": {
		Name:         "grayscale",
		Background:   color.White,
		Foreground:   color.Black,
		GridColor:    hex("#b2b2b2"),
		Palette:      palette("#000000", "#555555", "#888888", "#aaaaaa", "#cccccc"),
		LineWidth:    1.5,
		MarkerRadius: 3,
		FontSize:     10,
		FigureHeight: 4.8,
	},
	"dark_background": {
		Name:       "dark_background",
		Background: color.Black,
		Foreground: color.White,
		GridColor:  color.White,
		Palette: palette("#8dd3c7", "#feffb3", "#bfbbd9", "#fa8174", "#81b1d2",
			"#fdb462", "#b3de69", "#bc82bd", "#ccebc4", "#ffed6f"),
		LineWidth:    1.5,
		MarkerRadius: 3,
		FontSize:     10,
		FigureHeight: 4.8,
	},
	"seaborn": {
		Name:         "seaborn",
		Background:   hex("#eaeaf2"),
		Foreground:   hex("#262626"),
		Grid:         true,
		GridColor:    color.White,
		Palette:      palette("#4c72b0", "#55a868", "#c44e52", "#8172b2", "#ccb974", "#64b5cd"),
		LineWidth:    1.75,
		MarkerRadius: 3.5,
		FontSize:     11,
		FigureHeight: 4.8,
	},
}

func hex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func palette(hexes ...string) []color.Color {
	out := make([]color.Color, len(hexes))
	for i, h := range hexes {
		out[i] = hex(h)
	}
	return out
}
