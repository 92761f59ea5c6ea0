// Package parser defines the parser plugin contract, the plugin registry and
// the format detector.
//
// # Overview
//
// A [Parser] turns one kind of plot description file into a [value.Value]
// tree. Parsers are registered in a [Registry] under a unique name, in a
// stable order. [Detect] selects a parser for a file either by name or by
// asking each registered parser in turn whether it claims the file.
//
// # Claiming
//
// Claim tests are format specific: the structured-text parsers look at the
// file extension, the instrument-export parser reads the first two lines of
// the file. A successful claim returns a [Decoder] that is already bound to
// the file, so a parser that had to read from the file during the claim can
// continue from the same position when decoding.
//
//	reg := parsers.Registry(nil)
//	dec, name, err := parser.Detect(reg, "plot.yml", "", logger)
//	if err != nil {
//	    return err
//	}
//	defer dec.Close()
//	doc, err := dec.Decode()
//
// Built-in parsers live in subpackages ([yaml], [toml], [hip], [multispect]);
// the ordered built-in list is assembled by [parsers].
//
// [yaml]: github.com/matzehuels/uniplot/pkg/parser/yaml
// [toml]: github.com/matzehuels/uniplot/pkg/parser/toml
// [hip]: github.com/matzehuels/uniplot/pkg/parser/hip
// [multispect]: github.com/matzehuels/uniplot/pkg/parser/multispect
// [parsers]: github.com/matzehuels/uniplot/pkg/parser/parsers
package parser
