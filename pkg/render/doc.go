// Package render draws a [model.Graph] to an image using gonum/plot.
//
// Each Plot of the graph becomes one gonum plot, tiled into the grid from
// [layout.NewGrid] and aligned with [plot.Align] so that data areas line up
// across rows and columns. Series without errors are drawn as lines; series
// with errors are drawn as circles with symmetric error bars.
//
// The output format follows the file extension:
//
//	err := render.Save(g, st, "spectrum.svg")
//
// or is given explicitly when writing to a stream:
//
//	err := render.Write(w, g, st, "png")
//
// Supported formats are listed by [Formats].
//
// [model.Graph]: github.com/matzehuels/uniplot/pkg/model.Graph
// [layout.NewGrid]: github.com/matzehuels/uniplot/pkg/layout.NewGrid
// [plot.Align]: gonum.org/v1/plot.Align
package render
