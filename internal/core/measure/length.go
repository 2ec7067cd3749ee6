// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package measure

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
)

// Field names reported in validation errors.
const (
	FieldQuantity = "quantity"
	FieldUnit     = "unit"
)

// Length is a non-negative quantity tagged with its unit.
//
// The zero value is 0 mm. Lengths are immutable; arithmetic returns new values.
type Length struct {
	quantity decimal.Decimal
	unit     Unit
}

// NewLength validates quantity and unit. Negative quantities are rejected,
// never clamped.
func NewLength(quantity decimal.Decimal, unit Unit) (Length, error) {
	v := &validate.Validator{}
	v.NonNegative(FieldQuantity, quantity).
		Custom(FieldUnit, !unit.IsValid(), "Unknown measure unit")

	if err := v.Err(); err != nil {
		return Length{}, err
	}

	return Length{quantity: quantity, unit: unit}, nil
}

// LengthFromFloat is [NewLength] for float literals (e.g. 16.6 mm). NaN and
// infinite quantities are rejected.
func LengthFromFloat(quantity float64, unit Unit) (Length, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Length{}, validate.RequiredError(FieldQuantity, "Must be a finite number")
	}
	return NewLength(decimal.NewFromFloat(quantity), unit)
}

// Millimeter is a shortcut for lengths in millimetres.
func Millimeter(quantity decimal.Decimal) (Length, error) {
	return NewLength(quantity, Millimeters)
}

// Quantity returns the amount, expressed in [Length.Unit].
func (l Length) Quantity() decimal.Decimal { return l.quantity }

// Unit returns the measure unit.
func (l Length) Unit() Unit { return l.unit }

// IsZero reports whether the quantity is zero, whatever the unit.
func (l Length) IsZero() bool { return l.quantity.IsZero() }

// ConvertTo expresses l in the target unit.
func (l Length) ConvertTo(target Unit) Length {
	return Length{
		quantity: l.unit.To(target).Convert(l.quantity),
		unit:     target,
	}
}

// Add sums two lengths. The right operand is converted into l's unit, and the
// result is always expressed in l's unit.
func (l Length) Add(other Length) Length {
	return Length{
		quantity: l.quantity.Add(other.unit.To(l.unit).Convert(other.quantity)),
		unit:     l.unit,
	}
}

// Compare returns -1, 0 or +1 after converting other into l's unit.
//
// The conversion is rounded to 16 decimal digits, so at the rounding edge
// a.Compare(b) and b.Compare(a) may disagree (1 mm vs 0.0393700787401575 in).
func (l Length) Compare(other Length) int {
	return l.quantity.Cmp(other.unit.To(l.unit).Convert(other.quantity))
}

// Equal reports whether both lengths describe the same physical quantity,
// as seen from l's unit. It is not an equivalence relation across units; see
// [Length.Compare].
func (l Length) Equal(other Length) bool {
	return l.Compare(other) == 0
}

// String renders "<quantity> <symbol>", e.g. "42 mm".
func (l Length) String() string {
	return fmt.Sprintf("%s %s", l.quantity.String(), l.unit.Symbol())
}
