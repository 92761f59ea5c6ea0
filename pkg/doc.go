// Package pkg provides the core libraries for uniplot.
//
// # Overview
//
// uniplot turns plot descriptions written in human-readable formats (YAML,
// TOML, hip, Multi-Spect exports, or anything a user parser plugin can read)
// into images. Every input format is decoded into the same generic value
// tree, so one model builder and one renderer serve them all.
//
// # Architecture
//
// The data flow through uniplot:
//
//	input file
//	     ↓
//	[parser] (detect format, decode to a [value] tree)
//	     ↓
//	[model] (validate, resolve [tabular] file references)
//	     ↓
//	[layout] + [style] (subplot grid, shared ticks, stylesheet)
//	     ↓
//	[render] (gonum/plot: PDF, SVG, PNG, ...)
//
// [pipeline] runs these stages in order and is what the CLI calls.
//
// # Quick Start
//
//	reg, _ := parsers.Registry(nil)
//	runner := pipeline.NewRunner(reg, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input: "spectrum.Spe",
//	    Style: "ggplot",
//	})
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, errors.UserMessage(err))
//	}
//	fmt.Println(result.Output) // spectrum.pdf
//
// # Main Packages
//
// [parser] - Parser plugin contract, ordered [parser.Registry] and format
// detection. Built-in parsers live in subpackages (yaml, toml, hip,
// multispect); parser/external runs user plugins described by TOML
// manifests.
//
// [value] - The dynamic value tree every parser produces.
//
// [model] - Graph, Plot and Series types and the builder that validates a
// value tree into them.
//
// [tabular] - Column extraction from CSV and whitespace-delimited data
// files, memoized per file.
//
// [layout] - Subplot grid sizing and shared-axis tick hiding.
//
// [style] - Built-in styles, TOML stylesheets and name resolution.
//
// [render] - Drawing a graph with gonum/plot and writing it in the format
// chosen by the output extension.
//
// [observability] - Hooks for pipeline stages and cache events.
//
// [errors] - Coded errors shared by all packages.
//
// [parser]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/parser
// [parser.Registry]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/parser#Registry
// [value]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/value
// [model]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/model
// [tabular]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/tabular
// [layout]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/layout
// [style]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/style
// [render]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/uniplot/pkg/errors
package pkg
