// Package pipeline runs one description file through uniplot.
//
// A run has three stages:
//
//  1. Parse: detect the parser for the input file and decode it
//  2. Build: normalize the decoded value into a graph and resolve its style
//  3. Render: draw the graph and write the image
//
// # Usage
//
//	reg, err := parsers.Registry(userPlugins)
//	runner := pipeline.NewRunner(reg, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input: "spectrum.Spe",
//	    Style: "ggplot",
//	})
//	fmt.Println(result.Output) // spectrum.pdf
//
// Stages can also be run on their own with [Runner.Parse], [Runner.Build]
// and [Runner.Render].
package pipeline

import (
	"path/filepath"
	"time"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/model"
	"github.com/matzehuels/uniplot/pkg/render"
	"github.com/matzehuels/uniplot/pkg/style"
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options configure one run.
type Options struct {
	// Input is the description file.
	Input string

	// Output is the image path. Defaults to the input path with a .pdf
	// extension.
	Output string

	// Parser names the parser to use instead of detecting one.
	Parser string

	// Style is the requested style. A style key at the top level of a
	// mapping input takes precedence.
	Style string

	// StyleDir holds user stylesheets.
	StyleDir string

	// FigureHeight overrides the figure height of the style, in inches.
	FigureHeight float64
}

// ValidateAndSetDefaults checks required fields and fills in the output path.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	if o.Output == "" {
		o.Output = render.OutputPath(o.Input)
	}
	if o.FigureHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "figure height must be positive, got %v", o.FigureHeight)
	}
	return nil
}

// BaseDir is the directory relative data file references resolve against.
func (o *Options) BaseDir() string {
	return filepath.Dir(o.Input)
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a run.
type Result struct {
	// Output is the path of the written image.
	Output string

	// Parser is the name of the parser that decoded the input.
	Parser string

	// Graph is the normalized graph that was rendered.
	Graph *model.Graph

	// Style is the style the graph was rendered with.
	Style style.Style

	// StyleTier tells where Style came from.
	StyleTier style.Tier

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	PlotCount   int
	SeriesCount int
	ParseTime   time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}
