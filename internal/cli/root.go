package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/uniplot/pkg/buildinfo"
	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/pipeline"
)

// rootOptions holds the flags of the root command.
type rootOptions struct {
	style   string
	parser  string
	height  float64
	verbose bool
	list    bool
}

// RootCommand creates the uniplot command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "uniplot [flags] <input> [<output>]",
		Short: "Plot graphs from human-readable file formats",
		Long: `uniplot reads a plot description (YAML, TOML, hip, Multi-Spect export or a
user parser plugin) and renders it as an image. The output format follows the
output extension and defaults to PDF next to the input file.`,
		Example: `  uniplot spectrum.Spe
  uniplot -s ggplot runs.yml runs.svg
  uniplot -p toml description.txt`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return c.runList(cmd)
			}
			if len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "requires an input file (see --help)")
			}
			return c.runPlot(cmd, args, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().BoolP("version", "V", false, "display version info and exit")
	root.Flags().StringVarP(&opts.style, "style", "s", "", "stylesheet to use for the plot")
	root.Flags().StringVarP(&opts.parser, "parser", "p", "", "parser to use for the input file")
	root.Flags().Float64Var(&opts.height, "height", 0, "figure height in inches (default from style)")
	root.Flags().BoolVar(&opts.list, "list", false, "list available parsers and styles and exit")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

func (c *CLI) runPlot(cmd *cobra.Command, args []string, opts rootOptions) error {
	popts := pipeline.Options{
		Input:        args[0],
		Parser:       opts.parser,
		Style:        opts.style,
		StyleDir:     styleDir(),
		FigureHeight: opts.height,
	}
	if len(args) == 2 {
		popts.Output = args[1]
	}

	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", result.Output))

	w := cmd.OutOrStdout()
	printSuccess(w, "Plotted %s with the %s parser", popts.Input, StyleHighlight.Render(result.Parser))
	printStats(w, result.Stats.PlotCount, result.Stats.SeriesCount, result.Style.Name)
	printFile(w, result.Output)
	return nil
}
