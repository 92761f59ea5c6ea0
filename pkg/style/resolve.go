package style

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/uniplot/pkg/errors"
)

// Tier identifies where a resolved style came from.
type Tier int

const (
	TierDefault Tier = iota // no name, or nothing matched
	TierUser                // stylesheet in the user style directory
	TierBuiltin             // built-in named style
)

func (t Tier) String() string {
	switch t {
	case TierUser:
		return "user"
	case TierBuiltin:
		return "builtin"
	default:
		return "default"
	}
}

// Resolve returns the style for name, searching the stylesheets in dir and
// then the built-in styles. An empty name selects the default style. A
// name that cannot be resolved logs exactly one warning and falls back to
// the default style.
func Resolve(name, dir string, logger *log.Logger) Style {
	s, _ := ResolveTier(name, dir, logger)
	return s
}

// ResolveTier is Resolve, also reporting which tier matched.
func ResolveTier(name, dir string, logger *log.Logger) (Style, Tier) {
	if name == "" {
		return Default(), TierDefault
	}
	if logger == nil {
		logger = log.Default()
	}

	if err := errors.ValidateName("style", name); err != nil {
		logger.Warn("invalid style name, using default", "style", name, "err", errors.UserMessage(err))
		return Default(), TierDefault
	}

	if path, ok := sheetPath(dir, name); ok {
		s, err := LoadSheet(path, name)
		if err != nil {
			logger.Warn("stylesheet could not be loaded, using default", "style", name, "err", errors.UserMessage(err))
			return Default(), TierDefault
		}
		logger.Debug("using stylesheet", "style", name, "path", path)
		return s, TierUser
	}

	if s, ok := Builtin(name); ok {
		logger.Debug("using built-in style", "style", name)
		return s, TierBuiltin
	}

	logger.Warn("style not found, using default", "style", name)
	return Default(), TierDefault
}
