// Package hip provides the parser for hip files, uniplot's binary plot
// description format.
//
// A hip file is a single CBOR (RFC 8949) data item holding the same
// document tree as the text formats. Decoding is delegated to
// github.com/fxamacker/cbor/v2. The parser claims files with the .hip
// extension and is registered last, so it is the last resort of automatic
// detection; when requested by name it is used for any file.
package hip

import (
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/matzehuels/uniplot/pkg/errors"
	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/value"
)

// Name is the registry name of the parser.
const Name = "hip"

// Ext is the conventional hip file extension.
const Ext = ".hip"

var decMode = mustDecMode()

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		IndefLength:     cbor.IndefLengthAllowed,
		MaxNestedLevels: 64,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// Parser decodes hip files.
type Parser struct{}

// New returns a hip parser. It never fails.
func New() (parser.Parser, error) { return &Parser{}, nil }

func (p *Parser) Name() string { return Name }

func (p *Parser) Claim(path string) (parser.Decoder, bool, error) {
	if !parser.HasExt(path, Ext) {
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

// Decode converts one CBOR data item into a value tree.
func Decode(data []byte) (value.Value, error) {
	var doc any
	if err := decMode.Unmarshal(data, &doc); err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid hip data")
	}
	v, err := value.FromAny(doc)
	if err != nil {
		return value.Value{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unsupported hip content")
	}
	return v, nil
}
