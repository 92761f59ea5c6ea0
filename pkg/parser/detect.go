package parser

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/uniplot/pkg/errors"
)

// Detect selects the parser for path and returns a Decoder bound to it along
// with the chosen parser's name.
//
// With a non-empty hint the parser registered under exactly that name is
// used without a claim test; an unknown name fails with
// [errors.ErrCodeUnknownParser]. Otherwise parsers are tried in registration
// order and the first one to claim the file wins. Parsers whose factory
// fails are skipped with a warning. If nothing claims the file, Detect fails
// with [errors.ErrCodeNoParserFound].
func Detect(reg *Registry, path, hint string, logger *log.Logger) (Decoder, string, error) {
	if logger == nil {
		logger = log.Default()
	}

	if hint != "" {
		e, ok := reg.ByName(hint)
		if !ok {
			return nil, "", errors.New(errors.ErrCodeUnknownParser,
				"no parser named %q (available: %s)", hint, strings.Join(reg.Names(), ", "))
		}
		p, err := e.New()
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeUnknownParser, err, "parser %q could not be loaded", hint)
		}
		dec, err := p.Open(path)
		if err != nil {
			return nil, "", err
		}
		logger.Debug("using requested parser", "parser", hint, "file", path)
		return dec, hint, nil
	}

	for _, e := range reg.All() {
		p, err := e.New()
		if err != nil {
			logger.Warn("parser could not be loaded", "parser", e.Name, "err", err)
			continue
		}
		dec, ok, err := p.Claim(path)
		if err != nil {
			return nil, "", err
		}
		if ok {
			logger.Debug("parser claimed file", "parser", e.Name, "file", path)
			return dec, e.Name, nil
		}
	}

	return nil, "", errors.New(errors.ErrCodeNoParserFound, "no parser could be found for %s", path)
}
