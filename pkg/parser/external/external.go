// Package external loads user-defined parser plugins from a directory.
//
// Each plugin is described by a TOML manifest (*.toml) in the plugin
// directory:
//
//	name = "dat"
//	extensions = [".dat"]
//	signature = "#DATFILE"
//	command = "python3 ~/bin/dat2json.py"
//
// The plugin claims files by extension and, when signature is set, only
// those whose first line equals it after trimming whitespace. Unknown
// manifest keys are rejected. Decoding runs the command with the
// file path appended as the last argument and reads a JSON document from its
// standard output. A plugin whose command cannot be found is reported as a
// load failure by its factory, which the detector treats as non-fatal.
package external

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/kballard/go-shellquote"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Manifest describes one external parser.
type Manifest struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
	Signature  string   `toml:"signature"`
	Command    string   `toml:"command"`
}

func (m Manifest) validate() error {
	if err := errors.ValidateName("parser", m.Name); err != nil {
		return err
	}
	if strings.TrimSpace(m.Command) == "" {
		return fmt.Errorf("parser %q: missing command", m.Name)
	}
	if len(m.Extensions) == 0 {
		return fmt.Errorf("parser %q: no extensions declared", m.Name)
	}
	for _, ext := range m.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("parser %q: extension %q must start with a dot", m.Name, ext)
		}
	}
	return nil
}

// Discover reads all plugin manifests in dir, in file name order, and
// returns one registry entry per valid manifest. A missing directory yields
// no entries. Invalid manifests are skipped, logged and returned as errors.
func Discover(dir string, logger *log.Logger) ([]parser.Entry, []error) {
	if logger == nil {
		logger = log.Default()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		logger.Warn("cannot read parser directory", "dir", dir, "err", err)
		return nil, []error{err}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var (
		out  []parser.Entry
		errs []error
		seen = make(map[string]bool)
	)
	for _, ent := range entries {
		if ent.IsDir() || filepath.Ext(ent.Name()) != ".toml" {
			continue
		}
		path := filepath.Join(dir, ent.Name())

		var m Manifest
		md, err := toml.DecodeFile(path, &m)
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
			logger.Warn("skipping parser manifest", "err", err)
			errs = append(errs, err)
			continue
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			err := fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
			logger.Warn("skipping parser manifest", "err", err)
			errs = append(errs, err)
			continue
		}
		if err := m.validate(); err != nil {
			err = fmt.Errorf("%s: %w", path, err)
			logger.Warn("skipping parser manifest", "err", err)
			errs = append(errs, err)
			continue
		}
		if seen[m.Name] {
			err := fmt.Errorf("%s: duplicate parser name %q", path, m.Name)
			logger.Warn("skipping parser manifest", "err", err)
			errs = append(errs, err)
			continue
		}
		seen[m.Name] = true

		out = append(out, parser.Entry{Name: m.Name, New: Factory(m)})
	}
	return out, errs
}

// Factory returns a factory that resolves the manifest's command at load
// time.
func Factory(m Manifest) parser.Factory {
	return func() (parser.Parser, error) {
		args, err := shellquote.Split(m.Command)
		if err != nil {
			return nil, fmt.Errorf("parse command %q: %w", m.Command, err)
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("empty command")
		}
		bin, err := exec.LookPath(args[0])
		if err != nil {
			return nil, err
		}
		return &Parser{manifest: m, bin: bin, args: args[1:]}, nil
	}
}

// Parser runs an external command to decode files.
type Parser struct {
	manifest Manifest
	bin      string
	args     []string
}

func (p *Parser) Name() string { return p.manifest.Name }

func (p *Parser) Claim(path string) (parser.Decoder, bool, error) {
	if !parser.HasExt(path, p.manifest.Extensions...) {
		return nil, false, nil
	}
	if p.manifest.Signature != "" {
		ok, err := hasSignature(path, p.manifest.Signature)
		if err != nil || !ok {
			return nil, false, err
		}
	}
	dec, err := p.Open(path)
	return dec, err == nil, err
}

// hasSignature reports whether the first line of path equals sig. Lines
// longer than the read buffer never match.
func hasSignature(path, sig string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadSlice('\n')
	if err != nil && !(err == io.EOF && len(line) > 0) {
		return false, nil
	}
	return strings.TrimSpace(string(line)) == sig, nil
}

func (p *Parser) Open(path string) (parser.Decoder, error) {
	return parser.DecodeFunc(func() (value.Value, error) {
		return p.run(path)
	}), nil
}

func (p *Parser) run(path string) (value.Value, error) {
	args := append(append([]string{}, p.args...), path)
	cmd := exec.Command(p.bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err,
			"parser %q failed: %s", p.manifest.Name, strings.TrimSpace(stderr.String()))
	}

	var doc any
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parser %q produced invalid JSON", p.manifest.Name)
	}
	v, err := value.FromAny(doc)
	if err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parser %q produced unsupported content", p.manifest.Name)
	}
	return v, nil
}
