package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/uniplot/pkg/model"
	"github.com/matzehuels/uniplot/pkg/observability"
	"github.com/matzehuels/uniplot/pkg/style"
	"github.com/matzehuels/uniplot/pkg/tabular"
	"github.com/matzehuels/uniplot/pkg/value"
)

// Build normalizes a decoded value into a graph. Data file references are
// read through a reader that lives only for this call.
func (r *Runner) Build(ctx context.Context, v value.Value, opts Options) (g *model.Graph, err error) {
	start := time.Now()
	defer func() {
		plots, series := 0, 0
		if g != nil {
			plots, series = count(g)
		}
		observability.Pipeline().OnBuildComplete(ctx, plots, series, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return model.Build(v, model.Options{
		BaseDir: opts.BaseDir(),
		Reader:  tabular.NewReader(opts.BaseDir()),
	})
}

// ResolveStyle picks the style for a run. See [StyleName] for how the
// requested name is chosen.
func (r *Runner) ResolveStyle(ctx context.Context, v value.Value, g *model.Graph, opts Options) (style.Style, style.Tier) {
	name := StyleName(v, g, opts.Style)
	st, tier := style.ResolveTier(name, opts.StyleDir, r.Logger)
	observability.Pipeline().OnStyleResolved(ctx, name, st.Name, tier.String())
	return st, tier
}

// StyleName returns the style requested for an input. A container's style
// comes from the built graph. A bare plot has no graph-level style, so its
// own "style" key is read from the decoded value. Either wins over flag;
// list inputs always use flag.
func StyleName(v value.Value, g *model.Graph, flag string) string {
	if g != nil && g.Style != "" {
		return g.Style
	}
	if v.Kind() == value.KindMap {
		if sv, ok := v.Get("style"); ok {
			if s, ok := sv.AsString(); ok && s != "" {
				return s
			}
		}
	}
	return flag
}

func count(g *model.Graph) (plots, series int) {
	for _, p := range g.Plots {
		series += len(p.Series)
	}
	return len(g.Plots), series
}
