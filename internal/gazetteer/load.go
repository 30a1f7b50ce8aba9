package gazetteer

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/centers.yaml
var builtinDefinition []byte

// Parse decodes a YAML definition and builds a gazetteer from it.
// Unknown fields are rejected so typos in hand-edited files surface early.
func Parse(data []byte) (*Gazetteer, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("error decoding gazetteer: %w", err)
	}
	return New(def)
}

// Builtin returns the gazetteer compiled into the binary.
func Builtin() (*Gazetteer, error) {
	return Parse(builtinDefinition)
}

// Load reads the definition at path, or the built-in one when path is empty.
func Load(path string) (*Gazetteer, error) {
	if path == "" {
		return Builtin()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading gazetteer file: %w", err)
	}
	return Parse(data)
}
