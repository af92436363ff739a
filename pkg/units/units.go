package units

import (
	"Bakehouse-Backend/domain"
	"fmt"
	"math"
	"strconv"
)

// Unit classes an ingredient can belong to. Stock is always kept in the
// class base unit: grams, milliliters or units.
const (
	ClassMass   = "mass"
	ClassVolume = "volume"
	ClassCount  = "count"
)

// Entry units accepted on issuance and consumption forms.
const (
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLiter      = "l"
	UnitMilliliter = "ml"
	UnitPiece      = "un"
)

// BaseUnit returns the canonical base unit symbol for a class.
func BaseUnit(class string) (string, error) {
	switch class {
	case ClassMass:
		return UnitGram, nil
	case ClassVolume:
		return UnitMilliliter, nil
	case ClassCount:
		return UnitPiece, nil
	default:
		return "", domain.ErrUnknownUnitClass
	}
}

// Factor returns the multiplier that converts one entry unit into the class
// base unit, or ErrInvalidUnit when the unit does not belong to the class.
func Factor(class string, unit string) (float64, error) {
	switch class {
	case ClassMass:
		switch unit {
		case UnitKilogram:
			return 1000, nil
		case UnitGram:
			return 1, nil
		}
	case ClassVolume:
		switch unit {
		case UnitLiter:
			return 1000, nil
		case UnitMilliliter:
			return 1, nil
		}
	case ClassCount:
		if unit == UnitPiece {
			return 1, nil
		}
	default:
		return 0, domain.ErrUnknownUnitClass
	}
	return 0, domain.ErrInvalidUnit
}

// ToBase converts a compound quantity (principal in the given entry unit plus
// a complementary amount already in the base sub-unit) into a single base
// value. Negative components are rejected.
func ToBase(class string, unit string, principal, complementary float64) (float64, error) {
	if principal < 0 || complementary < 0 {
		return 0, domain.ErrNegativeQuantity
	}
	factor, err := Factor(class, unit)
	if err != nil {
		return 0, err
	}
	return principal*factor + complementary, nil
}

// FromBase splits a base value back into its principal/complementary pair:
// whole thousands for mass and volume, everything in the principal for count.
func FromBase(class string, total float64) (principal, complementary float64, err error) {
	if total < 0 {
		return 0, 0, domain.ErrNegativeQuantity
	}
	switch class {
	case ClassMass, ClassVolume:
		principal = math.Floor(total / 1000)
		complementary = total - principal*1000
		return principal, complementary, nil
	case ClassCount:
		return total, 0, nil
	default:
		return 0, 0, domain.ErrUnknownUnitClass
	}
}

// Format renders a base value as a human readable compound string, omitting
// the principal component when it is zero: "2 kg 300 g", "750 ml", "12 un".
func Format(class string, total float64) (string, error) {
	principal, complementary, err := FromBase(class, total)
	if err != nil {
		return "", err
	}

	var big, small string
	switch class {
	case ClassMass:
		big, small = UnitKilogram, UnitGram
	case ClassVolume:
		big, small = UnitLiter, UnitMilliliter
	case ClassCount:
		return trimFloat(total) + " " + UnitPiece, nil
	}

	if principal == 0 {
		return trimFloat(complementary) + " " + small, nil
	}
	if complementary == 0 {
		return trimFloat(principal) + " " + big, nil
	}
	return fmt.Sprintf("%s %s %s %s", trimFloat(principal), big, trimFloat(complementary), small), nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
