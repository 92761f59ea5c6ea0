package render

import (
	"bytes"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/layout"
	"github.com/matzehuels/uniplot/pkg/model"
	"github.com/matzehuels/uniplot/pkg/style"
)

const (
	tilePad   = 4 * vg.Millimeter
	figurePad = 2 * vg.Millimeter
)

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	height float64 // inches, 0 for the style's figure height
}

// WithFigureHeight overrides the figure height of the style, in inches.
// The width always follows from the grid so that subplots stay square.
func WithFigureHeight(inches float64) Option {
	return func(r *renderer) { r.height = inches }
}

func newRenderer(opts ...Option) renderer {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Save renders g in the format implied by the extension of path and writes
// the image to path. Nothing is written if rendering fails.
func Save(g *model.Graph, st style.Style, path string, opts ...Option) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, g, st, format, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
	}
	return nil
}

// Write renders g in the given format to w.
func Write(w io.Writer, g *model.Graph, st style.Style, format string, opts ...Option) error {
	if len(g.Plots) == 0 {
		return errors.New(errors.ErrCodeRenderFailed, "graph has no plots")
	}
	if !supported(format) {
		return errors.New(errors.ErrCodeRenderFailed, "unsupported output format %q", format)
	}
	r := newRenderer(opts...)

	height := st.FigureHeight
	if r.height > 0 {
		height = r.height
	}
	grid := layout.NewGrid(len(g.Plots), g.Share)
	width := grid.FigureWidth(height)

	c, err := draw.NewFormattedCanvas(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "create %s canvas", format)
	}
	dc := draw.New(c)
	dc.SetColor(st.Background)
	dc.Fill(dc.Rectangle.Path())
	dc = drawFigureTitle(dc, g.Title, st)

	plots := make([][]*plot.Plot, grid.Rows)
	for row := range plots {
		plots[row] = make([]*plot.Plot, grid.Cols)
	}
	for _, cell := range grid.Cells() {
		p, err := newPlot(g.Plots[cell.Index-1], cell, st)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "plot %d", cell.Index)
		}
		plots[cell.Row][cell.Col] = p
	}

	tiles := draw.Tiles{
		Rows:      grid.Rows,
		Cols:      grid.Cols,
		PadX:      tilePad,
		PadY:      tilePad,
		PadTop:    figurePad,
		PadBottom: figurePad,
		PadLeft:   figurePad,
		PadRight:  figurePad,
	}
	canvases := plot.Align(plots, tiles, dc)
	for row := range plots {
		for col, p := range plots[row] {
			if p != nil {
				p.Draw(canvases[row][col])
			}
		}
	}

	if _, err := c.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", format)
	}
	return nil
}

// drawFigureTitle draws the graph title above all subplots and returns the
// canvas area left for them.
func drawFigureTitle(dc draw.Canvas, title string, st style.Style) draw.Canvas {
	if title == "" {
		return dc
	}
	sty := text.Style{
		Color:   st.Foreground,
		Font:    font.From(plot.DefaultFont, vg.Points(st.TitleFontSize()+2)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
	dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - figurePad}, title)
	return draw.Crop(dc, 0, 0, 0, -(sty.Height(title) + figurePad))
}
