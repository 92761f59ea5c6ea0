package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/uniplot/pkg/model"
	"github.com/matzehuels/uniplot/pkg/observability"
	"github.com/matzehuels/uniplot/pkg/render"
	"github.com/matzehuels/uniplot/pkg/style"
)

// Render draws g with st and writes it to opts.Output.
func (r *Runner) Render(ctx context.Context, g *model.Graph, st style.Style, opts Options) (err error) {
	format, err := render.FormatFor(opts.Output)
	if err != nil {
		return err
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Output, format)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, opts.Output, format, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	var ropts []render.Option
	if opts.FigureHeight > 0 {
		ropts = append(ropts, render.WithFigureHeight(opts.FigureHeight))
	}
	return render.Save(g, st, opts.Output, ropts...)
}
