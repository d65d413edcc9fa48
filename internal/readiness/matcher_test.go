package readiness

import (
	"testing"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/alexanderramin/stockpile/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCatalogMatcher(t *testing.T) {
	entry := testutil.NewTestRecommendation("bottled-water", domain.CategoryWater, 3, domain.UnitLiters)
	legacy := CatalogMatcher{LegacyNameFallback: true}
	strict := CatalogMatcher{}

	tests := []struct {
		name       string
		item       domain.InventoryItem
		wantLegacy bool
		wantStrict bool
	}{
		{
			name:       "catalog link",
			item:       testutil.NewTestItem("My water", domain.CategoryWater, 6, domain.UnitLiters, testutil.LinkedTo("bottled-water")),
			wantLegacy: true,
			wantStrict: true,
		},
		{
			name:       "type tag without link",
			item:       testutil.NewTestItem("Water", domain.CategoryWater, 6, domain.UnitLiters, testutil.TaggedAs("bottled-water")),
			wantLegacy: true,
			wantStrict: true,
		},
		{
			name:       "custom item named like the entry",
			item:       testutil.NewTestItem("bottled-water", domain.CategoryWater, 6, domain.UnitLiters),
			wantLegacy: false,
			wantStrict: false,
		},
		{
			name:       "custom item with spaced name",
			item:       testutil.NewTestItem("Bottled  Water", domain.CategoryWater, 6, domain.UnitLiters),
			wantLegacy: false,
			wantStrict: false,
		},
		{
			name:       "legacy tagged item matched by normalized name",
			item:       testutil.NewTestItem(" Bottled   Water ", domain.CategoryWater, 6, domain.UnitLiters, testutil.TaggedAs("water")),
			wantLegacy: true,
			wantStrict: false,
		},
		{
			name:       "linked elsewhere never falls back to name",
			item:       testutil.NewTestItem("Bottled Water", domain.CategoryWater, 6, domain.UnitLiters, testutil.LinkedTo("long-life-milk")),
			wantLegacy: false,
			wantStrict: false,
		},
		{
			name:       "unrelated tag",
			item:       testutil.NewTestItem("Juice", domain.CategoryWater, 2, domain.UnitLiters, testutil.TaggedAs("juice")),
			wantLegacy: false,
			wantStrict: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLegacy, legacy.Matches(tt.item, entry), "legacy matcher")
			assert.Equal(t, tt.wantStrict, strict.Matches(tt.item, entry), "strict matcher")
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "bottled-water", NormalizeName("Bottled Water"))
	assert.Equal(t, "bottled-water", NormalizeName("  bottled \t WATER\n"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestMatchItems_PreservesOrder(t *testing.T) {
	entry := testutil.NewTestRecommendation("candles", domain.CategoryLightPower, 10, domain.UnitPieces)
	a := testutil.NewTestItem("a", domain.CategoryLightPower, 1, domain.UnitPieces, testutil.LinkedTo("candles"))
	b := testutil.NewTestItem("b", domain.CategoryLightPower, 1, domain.UnitPieces)
	c := testutil.NewTestItem("c", domain.CategoryLightPower, 2, domain.UnitPieces, testutil.TaggedAs("candles"))

	got := MatchItems(CatalogMatcher{}, []domain.InventoryItem{a, b, c}, entry)
	if assert.Len(t, got, 2) {
		assert.Equal(t, a.ID, got[0].ID)
		assert.Equal(t, c.ID, got[1].ID)
	}
}
