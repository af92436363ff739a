package units

import (
	"Bakehouse-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBase(t *testing.T) {
	tests := []struct {
		name          string
		class         string
		unit          string
		principal     float64
		complementary float64
		want          float64
	}{
		{"kilograms with grams", ClassMass, UnitKilogram, 2, 300, 2300},
		{"plain grams", ClassMass, UnitGram, 450, 0, 450},
		{"liters with milliliters", ClassVolume, UnitLiter, 1, 250, 1250},
		{"plain milliliters", ClassVolume, UnitMilliliter, 750, 0, 750},
		{"count", ClassCount, UnitPiece, 12, 0, 12},
		{"fractional kilograms", ClassMass, UnitKilogram, 1.5, 0, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBase(tt.class, tt.unit, tt.principal, tt.complementary)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBaseRejectsNegativeComponents(t *testing.T) {
	_, err := ToBase(ClassMass, UnitKilogram, -1, 0)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)

	_, err = ToBase(ClassMass, UnitKilogram, 1, -50)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

func TestToBaseRejectsUnitOutsideClass(t *testing.T) {
	_, err := ToBase(ClassMass, UnitLiter, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = ToBase(ClassCount, UnitGram, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = ToBase("weight", UnitGram, 1, 0)
	assert.ErrorIs(t, err, domain.ErrUnknownUnitClass)
}

func TestFromBaseSplit(t *testing.T) {
	principal, complementary, err := FromBase(ClassMass, 2300)
	require.NoError(t, err)
	assert.Equal(t, 2.0, principal)
	assert.Equal(t, 300.0, complementary)

	principal, complementary, err = FromBase(ClassVolume, 900)
	require.NoError(t, err)
	assert.Equal(t, 0.0, principal)
	assert.Equal(t, 900.0, complementary)

	principal, complementary, err = FromBase(ClassCount, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, principal)
	assert.Equal(t, 0.0, complementary)
}

// Round-trip preserves the base value, not the original split: 0.5 kg comes
// back as 500 g but still totals 500.
func TestRoundTripPreservesValue(t *testing.T) {
	cases := []struct {
		class string
		unit  string
		p, c  float64
	}{
		{ClassMass, UnitKilogram, 2, 300},
		{ClassMass, UnitKilogram, 0.5, 0},
		{ClassMass, UnitGram, 999, 0},
		{ClassVolume, UnitLiter, 3, 50},
		{ClassVolume, UnitMilliliter, 1750, 0},
		{ClassCount, UnitPiece, 40, 0},
	}

	principalUnit := map[string]string{
		ClassMass:   UnitKilogram,
		ClassVolume: UnitLiter,
		ClassCount:  UnitPiece,
	}

	for _, tc := range cases {
		total, err := ToBase(tc.class, tc.unit, tc.p, tc.c)
		require.NoError(t, err)

		principal, complementary, err := FromBase(tc.class, total)
		require.NoError(t, err)

		recomputed, err := ToBase(tc.class, principalUnit[tc.class], principal, complementary)
		require.NoError(t, err)
		assert.Equal(t, total, recomputed)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		class string
		total float64
		want  string
	}{
		{ClassMass, 2300, "2 kg 300 g"},
		{ClassMass, 2000, "2 kg"},
		{ClassMass, 450, "450 g"},
		{ClassVolume, 1250, "1 l 250 ml"},
		{ClassVolume, 750, "750 ml"},
		{ClassCount, 12, "12 un"},
		{ClassMass, 0, "0 g"},
	}

	for _, tt := range tests {
		got, err := Format(tt.class, tt.total)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFromBaseRejectsNegativeTotal(t *testing.T) {
	_, _, err := FromBase(ClassMass, -1)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}
