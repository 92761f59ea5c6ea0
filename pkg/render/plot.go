package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/uniplot/pkg/layout"
	"github.com/matzehuels/uniplot/pkg/model"
	"github.com/matzehuels/uniplot/pkg/style"
)

// newPlot builds the gonum plot for one subplot.
func newPlot(mp *model.Plot, cell layout.Cell, st style.Style) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = st.Background

	p.Title.Text = mp.Title
	p.Title.TextStyle.Color = st.Foreground
	p.Title.TextStyle.Font.Size = vg.Points(st.TitleFontSize())

	p.X.Label.Text = mp.Labels.X
	p.Y.Label.Text = mp.Labels.Y
	styleAxis(&p.X, st)
	styleAxis(&p.Y, st)
	if cell.HideXTicks {
		p.X.Tick.Marker = unlabeled{p.X.Tick.Marker}
	}
	if cell.HideYTicks {
		p.Y.Tick.Marker = unlabeled{p.Y.Tick.Marker}
	}

	if st.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = st.GridColor
		grid.Horizontal.Color = st.GridColor
		p.Add(grid)
	}

	for i, s := range mp.Series {
		if err := addSeries(p, s, st.Color(i), st); err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
	}

	if mp.NeedsLegend() {
		p.Legend.Top = true
		p.Legend.TextStyle.Color = st.Foreground
		p.Legend.TextStyle.Font.Size = vg.Points(st.FontSize)
	}
	return p, nil
}

func styleAxis(a *plot.Axis, st style.Style) {
	a.LineStyle.Color = st.Foreground
	a.Label.TextStyle.Color = st.Foreground
	a.Label.TextStyle.Font.Size = vg.Points(st.LabelFontSize())
	a.Tick.LineStyle.Color = st.Foreground
	a.Tick.Label.Color = st.Foreground
	a.Tick.Label.Font.Size = vg.Points(st.FontSize)
}

// addSeries draws s as a line, or as circles with error bars when it has
// errors on either axis.
func addSeries(p *plot.Plot, s *model.Series, col color.Color, st style.Style) error {
	xys := make(plotter.XYs, s.Len())
	for i := range xys {
		xys[i].X = s.X[i]
		xys[i].Y = s.Y[i]
	}

	if !s.HasErrors() {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = col
		line.LineStyle.Width = vg.Points(st.LineWidth)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
		return nil
	}

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	points.GlyphStyle = draw.GlyphStyle{
		Color:  col,
		Radius: vg.Points(st.MarkerRadius),
		Shape:  draw.CircleGlyph{},
	}
	bars := errorPoints{XYs: xys, xerr: s.XErr, yerr: s.YErr}
	barStyle := draw.LineStyle{Color: col, Width: vg.Points(st.LineWidth / 2)}

	if s.XErr != nil {
		xb, err := plotter.NewXErrorBars(bars)
		if err != nil {
			return err
		}
		xb.LineStyle = barStyle
		p.Add(xb)
	}
	if s.YErr != nil {
		yb, err := plotter.NewYErrorBars(bars)
		if err != nil {
			return err
		}
		yb.LineStyle = barStyle
		p.Add(yb)
	}
	p.Add(points)
	if s.Label != "" {
		p.Legend.Add(s.Label, points)
	}
	return nil
}

// errorPoints pairs points with symmetric errors.
type errorPoints struct {
	plotter.XYs
	xerr, yerr []float64
}

func (e errorPoints) XError(i int) (float64, float64) { return e.xerr[i], e.xerr[i] }
func (e errorPoints) YError(i int) (float64, float64) { return e.yerr[i], e.yerr[i] }

// unlabeled keeps the tick positions of a Ticker and drops their labels.
type unlabeled struct {
	plot.Ticker
}

func (u unlabeled) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
