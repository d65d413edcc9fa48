package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// KitSchema is a recommendation kit: the catalog of supplies a household
// is advised to keep, in display order.
type KitSchema struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []KitItem `json:"items" yaml:"items"`
}

// KitItem is one catalog entry in a kit file.
type KitItem struct {
	ID                 string   `json:"id" yaml:"id"`
	Name               string   `json:"name" yaml:"name"`
	Category           string   `json:"category" yaml:"category"`
	Quantity           float64  `json:"quantity" yaml:"quantity"`
	Unit               string   `json:"unit" yaml:"unit"`
	ScaleWithPeople    bool     `json:"scale_with_people,omitempty" yaml:"scale_with_people,omitempty"`
	ScaleWithDays      bool     `json:"scale_with_days,omitempty" yaml:"scale_with_days,omitempty"`
	ScaleWithPets      bool     `json:"scale_with_pets,omitempty" yaml:"scale_with_pets,omitempty"`
	RequiresFreezer    bool     `json:"requires_freezer,omitempty" yaml:"requires_freezer,omitempty"`
	CaloriesPerUnit    *float64 `json:"calories_per_unit,omitempty" yaml:"calories_per_unit,omitempty"`
	WaterLitersPerUnit *float64 `json:"water_liters_per_unit,omitempty" yaml:"water_liters_per_unit,omitempty"`
}

// Format selects the kit file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from the file extension; anything that is
// not .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseKit decodes a kit from data.
func ParseKit(data []byte, format Format) (*KitSchema, error) {
	var kit KitSchema
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &kit); err != nil {
			return nil, fmt.Errorf("parsing kit yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &kit); err != nil {
			return nil, fmt.Errorf("parsing kit json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported kit format %q", format)
	}
	return &kit, nil
}

// LoadKit reads and parses a kit file.
func LoadKit(path string) (*KitSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKit(data, FormatForPath(path))
}
