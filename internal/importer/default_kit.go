package importer

import (
	_ "embed"
	"errors"
	"fmt"
)

//go:embed kits/default.yaml
var defaultKitYAML []byte

// DefaultKit returns the built-in 72-hour household kit.
func DefaultKit() (*KitSchema, error) {
	kit, err := ParseKit(defaultKitYAML, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in kit: %w", err)
	}
	if errs := ValidateKit(kit); len(errs) > 0 {
		return nil, fmt.Errorf("built-in kit: %w", errors.Join(errs...))
	}
	return kit, nil
}
