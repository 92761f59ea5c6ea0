package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/observability"
	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/value"
)

// Parse detects the parser for opts.Input, decodes the file and releases
// it. It returns the decoded value and the name of the parser used.
func (r *Runner) Parse(ctx context.Context, opts Options) (v value.Value, name string, err error) {
	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, opts.Input, opts.Parser)
	defer func() {
		observability.Pipeline().OnParseComplete(ctx, opts.Input, name, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return value.Value{}, "", err
	}
	info, err := os.Stat(opts.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return value.Value{}, "", errors.New(errors.ErrCodeFileNotFound, "input file %s does not exist", opts.Input)
		}
		return value.Value{}, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "stat %s", opts.Input)
	}
	if info.IsDir() {
		return value.Value{}, "", errors.New(errors.ErrCodeInvalidInput, "input %s is a directory", opts.Input)
	}

	dec, name, err := parser.Detect(r.Registry, opts.Input, opts.Parser, r.Logger)
	if err != nil {
		return value.Value{}, "", err
	}
	r.Logger.Debug("selected parser", "parser", name, "input", opts.Input)

	v, err = dec.Decode()
	if cerr := dec.Close(); cerr != nil && err == nil {
		err = errors.Wrap(errors.ErrCodeInternal, cerr, "close %s", opts.Input)
	}
	if err != nil {
		return value.Value{}, name, err
	}
	return v, name, nil
}
