// Package toml provides the table-structured text parser for plot
// descriptions written in TOML.
//
// Files are claimed by the .toml extension and decoded with
// github.com/BurntSushi/toml. Arrays of tables ([[plots]]) become lists of
// maps.
package toml

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/value"
)

// Name is the registry name of the parser.
const Name = "toml"

// Parser decodes TOML plot descriptions.
type Parser struct{}

// New returns a TOML parser. It never fails.
func New() (parser.Parser, error) { return &Parser{}, nil }

func (p *Parser) Name() string { return Name }

func (p *Parser) Claim(path string) (parser.Decoder, bool, error) {
	if !parser.HasExt(path, ".toml") {
		return nil, false, nil
	}
	dec, err := p.Open(path)
	return dec, err == nil, err
}

func (p *Parser) Open(path string) (parser.Decoder, error) {
	return parser.DecodeFunc(func() (value.Value, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return value.Value{}, err
		}
		return Decode(data)
	}), nil
}

// Decode converts a TOML document into a value tree.
func Decode(data []byte) (value.Value, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid TOML")
	}
	v, err := value.FromAny(doc)
	if err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unsupported TOML content")
	}
	return v, nil
}
