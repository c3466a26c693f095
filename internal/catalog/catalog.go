// Package catalog loads item definitions from YAML files into an inventory
// registry. Documents are checked against an embedded JSON Schema before any
// definition is registered.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/gridstash/pkg/inventory"
)

//go:embed items.schema.json
var itemsSchema string

var schema = jsonschema.MustCompileString("items.schema.json", itemsSchema)

// File is the on-disk catalog layout.
type File struct {
	Items []inventory.Definition `yaml:"items"`
}

// Load reads, validates and registers the catalog at path.
func Load(path string) (*inventory.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Parse validates a YAML catalog document and registers its definitions in a
// new registry.
func Parse(data []byte) (*inventory.Registry, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	reg := inventory.NewRegistry()
	for _, def := range f.Items {
		if _, err := reg.Register(def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Validate checks a YAML catalog document against the item schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}
	// round-trip through JSON so the validator sees JSON types
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to convert catalog: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("failed to convert catalog: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}
