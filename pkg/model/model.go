package model

// Default axis labels used when a plot omits them.
const (
	DefaultXLabel = "x"
	DefaultYLabel = "y"
)

// Graph is the root of one description file.
type Graph struct {
	Title string
	Share bool   // hide inner tick labels of a multi-plot grid
	Style string // requested style name, empty for none
	Plots []*Plot
}

// Labels are the axis titles of a plot.
type Labels struct {
	X string
	Y string
}

// Plot is one subplot of a Graph.
type Plot struct {
	Title  string
	Labels Labels
	Series []*Series
}

// NeedsLegend reports whether any series carries a legend label.
func (p *Plot) NeedsLegend() bool {
	for _, s := range p.Series {
		if s.Label != "" {
			return true
		}
	}
	return false
}

// Series is one curve or point set in a plot. XErr and YErr are nil when
// the description gives no errors for that axis, otherwise they have the
// same length as the axis values.
type Series struct {
	Label string
	X     []float64
	Y     []float64
	XErr  []float64
	YErr  []float64
}

// HasErrors reports whether the series is drawn with error bars.
func (s *Series) HasErrors() bool {
	return s.XErr != nil || s.YErr != nil
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.X)
}
