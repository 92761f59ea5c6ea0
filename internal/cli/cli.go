// Package cli implements the uniplot command-line interface.
//
// uniplot has a single command:
//
//	uniplot [-V|--version] [-s STYLE] [-p PARSER] [-v] [--list] <input> [<output>]
//
// The output defaults to the input path with a .pdf extension. User
// stylesheets and parser plugins are read from the XDG configuration
// directory, ~/.config/uniplot/{styles,parsers} by default.
//
// # Logging
//
// Warnings (parser plugins that fail to load, unknown styles) and progress
// go to stderr through charmbracelet/log. --verbose (-v) enables debug
// output.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/parser/external"
	"github.com/matzehuels/uniplot/pkg/parser/parsers"
	"github.com/matzehuels/uniplot/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "uniplot"

	stylesSubdir  = "styles"
	parsersSubdir = "parsers"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// registry builds the parser registry: built-in parsers followed by the
// plugins found in the user parser directory. Invalid plugin manifests are
// logged by discovery and skipped, as are plugins reusing a built-in name.
func (c *CLI) registry() (*parser.Registry, map[string]bool, error) {
	found, _ := external.Discover(parserDir(), c.Logger)
	builtin, err := parsers.Registry(nil)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]bool, len(found))
	user := make([]parser.Entry, 0, len(found))
	for _, e := range found {
		if _, taken := builtin.ByName(e.Name); taken {
			c.Logger.Warn("skipping parser plugin that shadows a built-in parser", "parser", e.Name)
			continue
		}
		names[e.Name] = true
		user = append(user, e)
	}
	reg, err := parsers.Registry(user)
	if err != nil {
		return nil, nil, err
	}
	return reg, names, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	reg, _, err := c.registry()
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(reg, c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the configuration directory using XDG standard
// (~/.config/uniplot/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// styleDir returns the user stylesheet directory, or "" if there is none.
func styleDir() string {
	return subdir(stylesSubdir)
}

// parserDir returns the user parser plugin directory, or "" if there is none.
func parserDir() string {
	return subdir(parsersSubdir)
}

func subdir(name string) string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, name)
}
