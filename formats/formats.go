// Package formats renders planner collections for display. Machine formats
// (json, yaml) marshal any value through the registry; the text and
// markdown renderers know the planner's record shapes.
package formats

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format serializes a value for one output style.
type Format struct {
	// Name is the format identifier (lowercase alphanumeric)
	Name string

	// Render converts a value into its output string
	Render func(v interface{}) (string, error)
}

// registry holds all available output formats
var registry = make(map[string]*Format)

// Register adds a new output format to the registry
func Register(format *Format) error {
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric", format.Name)
	}
	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}
	registry[format.Name] = format
	return nil
}

// Get returns an output format by name
func Get(name string) (*Format, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(List(), ", "))
	}
	return format, nil
}

// List returns all registered format names
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// JSON renders values as indented JSON.
var JSON = &Format{
	Name: "json",
	Render: func(v interface{}) (string, error) {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render json: %w", err)
		}
		return string(out), nil
	},
}

// YAML renders values as YAML documents.
var YAML = &Format{
	Name: "yaml",
	Render: func(v interface{}) (string, error) {
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to render yaml: %w", err)
		}
		return string(out), nil
	},
}

func init() {
	_ = Register(JSON)
	_ = Register(YAML)
}
