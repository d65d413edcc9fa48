package cli

import (
	"testing"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitFlag(t *testing.T) {
	u := domain.UnitPieces
	f := newUnitFlag(&u)

	require.NoError(t, f.Set(" Cans "))
	assert.Equal(t, domain.UnitCans, u)
	assert.Equal(t, "cans", f.String())
	assert.Equal(t, "unit", f.Type())

	assert.Error(t, f.Set("kcal"), "calories are not a stock unit")
	assert.Equal(t, domain.UnitCans, u, "failed Set leaves the value alone")
}

func TestOptionalFloat(t *testing.T) {
	var v *float64
	f := optionalFloat{&v}
	assert.Equal(t, "default", f.String())

	require.NoError(t, f.Set("0.6"))
	require.NotNil(t, v)
	assert.Equal(t, 0.6, *v)
	assert.Equal(t, "0.6", f.String())

	require.NoError(t, f.Set("DEFAULT"))
	assert.Nil(t, v)

	assert.Error(t, f.Set("many"))
}

func TestHouseholdFields(t *testing.T) {
	h := domain.HouseholdConfig{Adults: 2, Children: 1, Pets: 3, SupplyDurationDays: 14, UseFreezer: true}
	fields := newHouseholdFields(h)

	got, err := fields.toConfig()
	require.NoError(t, err)
	assert.Equal(t, h, got)

	fields.Pets = "two"
	_, err = fields.toConfig()
	assert.ErrorContains(t, err, "pets")

	assert.NoError(t, validateNonNegativeInt("0"))
	assert.Error(t, validateNonNegativeInt("-1"))
	assert.Error(t, validateNonNegativeInt(""))
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", d.Format(dateLayout))

	_, err = parseDate("03/01/2025")
	assert.Error(t, err)
}
