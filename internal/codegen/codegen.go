package codegen

import (
	"fmt"

	"github.com/querydef/querydef/internal/parser"
)

// Generator emits language bindings for a set of parsed query files.
type Generator interface {
	Generate(files []*parser.QueryFile, outDir string, pkg string) error
	Language() string
}

var generators = make(map[string]Generator)

func Register(g Generator) {
	generators[g.Language()] = g
}

func Get(language string) (Generator, error) {
	g, ok := generators[language]
	if !ok {
		return nil, fmt.Errorf("unknown language: %s", language)
	}
	return g, nil
}

func Languages() []string {
	var langs []string
	for lang := range generators {
		langs = append(langs, lang)
	}
	return langs
}
