package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/uniplot/pkg/parser"
)

// Runner executes runs against a parser registry.
//
// The Runner keeps no state between runs: every run builds its own graph,
// data file reader and style. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Registry *parser.Registry
	Logger   *log.Logger
}

// NewRunner creates a runner. If logger is nil, log output is discarded.
func NewRunner(reg *parser.Registry, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Registry: reg,
		Logger:   logger,
	}
}

// Execute runs the complete parse → build → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if r.Registry == nil {
		return nil, fmt.Errorf("runner has no parser registry")
	}
	result := &Result{Output: opts.Output}

	// Stage 1: Parse
	parseStart := time.Now()
	v, name, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Parser = name
	result.Stats.ParseTime = time.Since(parseStart)

	r.Logger.Debug("parsed input",
		"input", opts.Input,
		"parser", name,
		"duration", result.Stats.ParseTime)

	// Stage 2: Build
	buildStart := time.Now()
	g, err := r.Build(ctx, v, opts)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.PlotCount, result.Stats.SeriesCount = count(g)
	result.Style, result.StyleTier = r.ResolveStyle(ctx, v, g, opts)
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Debug("built graph",
		"plots", result.Stats.PlotCount,
		"series", result.Stats.SeriesCount,
		"share", g.Share,
		"style", result.Style.Name,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	if err := r.Render(ctx, g, result.Style, opts); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered graph",
		"output", opts.Output,
		"duration", result.Stats.RenderTime)

	return result, nil
}
