package importer

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrFloat(f float64) *float64 { return &f }

func validMinimalKit() *KitSchema {
	return &KitSchema{
		Name: "Minimal",
		Items: []KitItem{
			{ID: "bottled-water", Category: "water-beverages", Quantity: 3, Unit: "liters"},
		},
	}
}

func TestValidateKit_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateKit(validMinimalKit()))
}

func TestValidateKit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(k *KitSchema)
		wantErr string
	}{
		{"missing name", func(k *KitSchema) { k.Name = "" }, "kit.name is required"},
		{"no items", func(k *KitSchema) { k.Items = nil }, "kit.items must not be empty"},
		{"missing id", func(k *KitSchema) { k.Items[0].ID = "" }, "items[0].id is required"},
		{"bad id", func(k *KitSchema) { k.Items[0].ID = "Bottled Water" }, "lowercase words"},
		{"missing category", func(k *KitSchema) { k.Items[0].Category = "" }, "category is required"},
		{"bad category", func(k *KitSchema) { k.Items[0].Category = "Water_Beverages" }, "category \"Water_Beverages\""},
		{"zero quantity", func(k *KitSchema) { k.Items[0].Quantity = 0 }, "quantity must be positive"},
		{"nan quantity", func(k *KitSchema) { k.Items[0].Quantity = math.NaN() }, "quantity must be positive"},
		{"unknown unit", func(k *KitSchema) { k.Items[0].Unit = "gallons" }, "invalid value \"gallons\""},
		{"kcal unit", func(k *KitSchema) { k.Items[0].Unit = "kcal" }, "invalid value \"kcal\""},
		{"negative calories", func(k *KitSchema) { k.Items[0].CaloriesPerUnit = ptrFloat(-1) }, "calories_per_unit"},
		{"negative water", func(k *KitSchema) { k.Items[0].WaterLitersPerUnit = ptrFloat(-0.5) }, "water_liters_per_unit"},
		{"duplicate id", func(k *KitSchema) { k.Items = append(k.Items, k.Items[0]) }, "duplicate id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kit := validMinimalKit()
			tt.mutate(kit)
			errs := ValidateKit(kit)
			if assert.NotEmpty(t, errs) {
				var msgs []string
				for _, e := range errs {
					msgs = append(msgs, e.Error())
				}
				assert.Contains(t, strings.Join(msgs, "\n"), tt.wantErr)
			}
		})
	}
}

func TestValidateKit_CollectsAllErrors(t *testing.T) {
	kit := &KitSchema{
		Items: []KitItem{
			{ID: "a", Category: "food", Quantity: -1, Unit: "cans"},
			{ID: "b", Category: "", Quantity: 1, Unit: "bogus"},
		},
	}
	assert.Len(t, ValidateKit(kit), 4)
}
