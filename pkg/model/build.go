package model

import (
	"fmt"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/tabular"
	"github.com/matzehuels/uniplot/pkg/value"
)

// Keys recognized in description files.
const (
	keyPlots  = "plots"
	keyTitle  = "title"
	keyShare  = "share"
	keyStyle  = "style"
	keyLabels = "labels"
	keyAxes   = "axes"
	keyLegend = "legend"
	keyValues = "values"
	keyErrors = "errors"
)

// Options configure Build.
type Options struct {
	// BaseDir resolves relative file references, normally the directory of
	// the description file.
	BaseDir string

	// Reader loads file references. If nil, a new Reader rooted at BaseDir
	// is used.
	Reader *tabular.Reader
}

// Build converts a parsed description into a Graph.
//
// Shape errors are reported as INVALID_AXIS_SPEC with the location of the
// offending value, for example "plots[1].axes[0].y: missing values".
// Errors from file references keep their own codes.
func Build(v value.Value, opts Options) (*Graph, error) {
	b := &builder{reader: opts.Reader}
	if b.reader == nil {
		b.reader = tabular.NewReader(opts.BaseDir)
	}

	if v.Has(keyPlots) {
		return b.container(v)
	}

	g := &Graph{}
	plots, err := b.plots(v, "", false)
	if err != nil {
		return nil, err
	}
	g.Plots = plots
	return g, nil
}

type builder struct {
	reader *tabular.Reader
}

func (b *builder) container(v value.Value) (*Graph, error) {
	g := &Graph{Share: true}

	var err error
	if g.Title, err = optString(v, keyTitle, ""); err != nil {
		return nil, err
	}
	if g.Style, err = optString(v, keyStyle, ""); err != nil {
		return nil, err
	}
	if sv, ok := v.Get(keyShare); ok && !sv.IsNull() {
		share, ok := sv.AsBool()
		if !ok {
			return nil, invalid(keyShare, "want a boolean, got %s", sv.Kind())
		}
		g.Share = share
	}

	pv, _ := v.Get(keyPlots)
	if g.Plots, err = b.plots(pv, keyPlots, true); err != nil {
		return nil, err
	}
	return g, nil
}

// plots accepts a single plot mapping or a non-empty list of them.
func (b *builder) plots(v value.Value, loc string, contained bool) ([]*Plot, error) {
	switch v.Kind() {
	case value.KindMap:
		p, err := b.plot(v, loc)
		if err != nil {
			return nil, err
		}
		return []*Plot{p}, nil
	case value.KindList:
		items, _ := v.AsList()
		if len(items) == 0 {
			return nil, invalid(loc, "no plots")
		}
		out := make([]*Plot, 0, len(items))
		for i, item := range items {
			at := index(loc, i)
			if !contained && item.Has(keyPlots) {
				return nil, invalid(at, "nested %q container inside a plot list", keyPlots)
			}
			p, err := b.plot(item, at)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	default:
		return nil, invalid(loc, "want a plot or a list of plots, got %s", v.Kind())
	}
}

func (b *builder) plot(v value.Value, loc string) (*Plot, error) {
	if v.Kind() != value.KindMap {
		return nil, invalid(loc, "want a plot mapping, got %s", v.Kind())
	}

	p := &Plot{Labels: Labels{X: DefaultXLabel, Y: DefaultYLabel}}

	var err error
	if p.Title, err = optString(v, keyTitle, "", loc); err != nil {
		return nil, err
	}
	if lv, ok := v.Get(keyLabels); ok && !lv.IsNull() {
		at := field(loc, keyLabels)
		if lv.Kind() != value.KindMap {
			return nil, invalid(at, "want a mapping, got %s", lv.Kind())
		}
		if p.Labels.X, err = optString(lv, "x", DefaultXLabel, at); err != nil {
			return nil, err
		}
		if p.Labels.Y, err = optString(lv, "y", DefaultYLabel, at); err != nil {
			return nil, err
		}
	}

	av, ok := v.Get(keyAxes)
	if !ok {
		return nil, invalid(loc, "missing %q", keyAxes)
	}
	at := field(loc, keyAxes)
	switch av.Kind() {
	case value.KindMap:
		s, err := b.series(av, at)
		if err != nil {
			return nil, err
		}
		p.Series = []*Series{s}
	case value.KindList:
		items, _ := av.AsList()
		if len(items) == 0 {
			return nil, invalid(at, "no series")
		}
		for i, item := range items {
			s, err := b.series(item, index(at, i))
			if err != nil {
				return nil, err
			}
			p.Series = append(p.Series, s)
		}
	default:
		return nil, invalid(at, "want a mapping or a list, got %s", av.Kind())
	}
	return p, nil
}

func (b *builder) series(v value.Value, loc string) (*Series, error) {
	if v.Kind() != value.KindMap {
		return nil, invalid(loc, "want a series mapping, got %s", v.Kind())
	}

	s := &Series{}
	var err error
	if s.Label, err = optString(v, keyLegend, "", loc); err != nil {
		return nil, err
	}
	if s.X, s.XErr, err = b.axis(v, "x", loc); err != nil {
		return nil, err
	}
	if s.Y, s.YErr, err = b.axis(v, "y", loc); err != nil {
		return nil, err
	}
	if len(s.X) != len(s.Y) {
		return nil, invalid(loc, "x has %d values but y has %d", len(s.X), len(s.Y))
	}
	return s, nil
}

// optString reads an optional string key, returning def when it is absent.
func optString(v value.Value, key, def string, loc ...string) (string, error) {
	sv, ok := v.Get(key)
	if !ok || sv.IsNull() {
		return def, nil
	}
	s, ok := sv.AsString()
	if !ok {
		at := key
		if len(loc) > 0 {
			at = field(loc[0], key)
		}
		return "", invalid(at, "want a string, got %s", sv.Kind())
	}
	return s, nil
}

func invalid(loc, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if loc != "" {
		msg = loc + ": " + msg
	}
	return errors.New(errors.ErrCodeInvalidAxisSpec, "%s", msg)
}

func field(loc, key string) string {
	if loc == "" {
		return key
	}
	return loc + "." + key
}

func index(loc string, i int) string {
	return fmt.Sprintf("%s[%d]", loc, i)
}
