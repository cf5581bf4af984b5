package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RosterImport is one project's month of shifts laid out as a grid: one row
// per staff member, one cell per day.
type RosterImport struct {
	Project string      `json:"project" yaml:"project"`
	Year    int         `json:"year" yaml:"year"`
	Month   int         `json:"month" yaml:"month"`
	Rows    []RowImport `json:"rows" yaml:"rows"`
}

// RowImport holds one staff member's shifts. Shifts[0] is day 1; an empty
// cell leaves that day without an entry.
type RowImport struct {
	Staff  string   `json:"staff" yaml:"staff"`
	Shifts []string `json:"shifts" yaml:"shifts"`
}

// LoadRosterImport reads a roster grid file. Files ending in .yaml or .yml
// are parsed as YAML, anything else as JSON.
func LoadRosterImport(path string) (*RosterImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRosterImport(data, filepath.Ext(path))
}

// ParseRosterImport decodes a roster grid. ext selects the format as in
// LoadRosterImport.
func ParseRosterImport(data []byte, ext string) (*RosterImport, error) {
	var schema RosterImport
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing roster YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing roster JSON: %w", err)
		}
	}
	return &schema, nil
}
