// Package parsers assembles the ordered list of built-in parsers.
//
// This package exists to break import cycles: the individual parser
// packages import pkg/parser, so pkg/parser cannot import them back.
//
// Order matters for automatic detection. The instrument-export parser comes
// first because its signature check is the most specific; the hip parser
// comes last as the last resort. User plugins are inserted before hip.
package parsers

import (
	"github.com/matzehuels/uniplot/pkg/parser"
	"github.com/matzehuels/uniplot/pkg/parser/hip"
	"github.com/matzehuels/uniplot/pkg/parser/multispect"
	"github.com/matzehuels/uniplot/pkg/parser/toml"
	"github.com/matzehuels/uniplot/pkg/parser/yaml"
)

// Builtin returns the built-in parsers in detection order, excluding hip.
func Builtin() []parser.Entry {
	return []parser.Entry{
		{Name: multispect.Name, New: multispect.New},
		{Name: yaml.Name, New: yaml.New},
		{Name: toml.Name, New: toml.New},
	}
}

// Registry builds the process-wide registry: the built-in parsers, then the
// given user plugins, then hip.
func Registry(user []parser.Entry) (*parser.Registry, error) {
	entries := Builtin()
	entries = append(entries, user...)
	entries = append(entries, parser.Entry{Name: hip.Name, New: hip.New})
	return parser.NewRegistry(entries...)
}
