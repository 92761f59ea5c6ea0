package multispect

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/matzehuels/uniplot/pkg/errors"
)

// settingsSection is the INI section read from the settings file.
const settingsSection = "Plot"

// Settings are the optional per-export plot settings.
type Settings struct {
	Title string
	LowX  *float64 // exclusive lower x bound
	HighX *float64 // exclusive upper x bound
}

// settingsPath returns the export path without its extension.
func settingsPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// loadSettings reads the settings file at path. A missing file, or a file
// without a [Plot] section, yields empty settings.
func loadSettings(path string) (Settings, error) {
	var s Settings
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeMalformedInput, err, "invalid settings file %s", path)
	}
	sec, err := cfg.GetSection(settingsSection)
	if err != nil {
		return s, nil
	}

	s.Title = sec.Key("title").String()
	if s.LowX, err = optionalFloat(sec, "lowx", path); err != nil {
		return s, err
	}
	if s.HighX, err = optionalFloat(sec, "highx", path); err != nil {
		return s, err
	}
	return s, nil
}

func optionalFloat(sec *ini.Section, key, path string) (*float64, error) {
	if !sec.HasKey(key) {
		return nil, nil
	}
	f, err := sec.Key(key).Float64()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: invalid %s", path, key)
	}
	return &f, nil
}
