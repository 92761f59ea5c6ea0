// Package yaml provides the block-structured text parser for plot
// descriptions written in YAML.
//
// Files are claimed by extension (.yml or .yaml) and decoded whole with
// gopkg.in/yaml.v3.
package yaml

import (
	"os"

	goyaml "gopkg.in/yaml.v3"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/value"
)

// Name is the registry name of the parser.
const Name = "yaml"

// Parser decodes YAML plot descriptions.
type Parser struct{}

// New returns a YAML parser. It never fails.
func New() (parser.Parser, error) { return &Parser{}, nil }

func (p *Parser) Name() string { return Name }

func (p *Parser) Claim(path string) (parser.Decoder, bool, error) {
	if !parser.HasExt(path, ".yml", ".yaml") {
		return nil, false, nil
	}
	dec, err := p.Open(path)
	return dec, err == nil, err
}

func (p *Parser) Open(path string) (parser.Decoder, error) {
	return parser.DecodeFunc(func() (value.Value, error) {
		return decodeFile(path)
	}), nil
}

func decodeFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return value.Value{}, err
	}
	return Decode(data)
}

// Decode converts a YAML document into a value tree.
func Decode(data []byte) (value.Value, error) {
	var doc any
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid YAML")
	}
	v, err := value.FromAny(doc)
	if err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unsupported YAML content")
	}
	return v, nil
}
