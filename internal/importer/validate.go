package importer

import (
	"fmt"
	"math"
	"regexp"

	"github.com/alexanderramin/stockpile/internal/domain"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateKit checks a kit before conversion and returns every problem found.
func ValidateKit(kit *KitSchema) []error {
	var errs []error

	if kit.Name == "" {
		errs = append(errs, fmt.Errorf("kit.name is required"))
	}
	if len(kit.Items) == 0 {
		errs = append(errs, fmt.Errorf("kit.items must not be empty"))
	}

	seen := make(map[string]bool, len(kit.Items))
	for i, item := range kit.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if item.ID != "" {
			prefix = fmt.Sprintf("items[%d] (%s)", i, item.ID)
		}
		errs = append(errs, validateItem(prefix, item)...)

		if item.ID != "" {
			if seen[item.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id", prefix))
			}
			seen[item.ID] = true
		}
	}
	return errs
}

func validateItem(prefix string, item KitItem) []error {
	var errs []error

	switch {
	case item.ID == "":
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	case !idPattern.MatchString(item.ID):
		errs = append(errs, fmt.Errorf("%s.id must be lowercase words joined by hyphens", prefix))
	}
	if item.Category == "" {
		errs = append(errs, fmt.Errorf("%s.category is required", prefix))
	} else if !idPattern.MatchString(item.Category) {
		errs = append(errs, fmt.Errorf("%s.category %q must be lowercase words joined by hyphens", prefix, item.Category))
	}
	if !finite(item.Quantity) || item.Quantity <= 0 {
		errs = append(errs, fmt.Errorf("%s.quantity must be positive", prefix))
	}
	if !domain.ValidUnits[domain.Unit(item.Unit)] {
		errs = append(errs, fmt.Errorf("%s.unit: invalid value %q", prefix, item.Unit))
	}
	if item.CaloriesPerUnit != nil && (!finite(*item.CaloriesPerUnit) || *item.CaloriesPerUnit < 0) {
		errs = append(errs, fmt.Errorf("%s.calories_per_unit must not be negative", prefix))
	}
	if item.WaterLitersPerUnit != nil && (!finite(*item.WaterLitersPerUnit) || *item.WaterLitersPerUnit < 0) {
		errs = append(errs, fmt.Errorf("%s.water_liters_per_unit must not be negative", prefix))
	}
	return errs
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
