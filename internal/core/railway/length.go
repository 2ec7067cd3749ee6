// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package railway

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/CarloMicieli/roundhouse/internal/core/measure"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
)

// Length is the overall length of tracks operated by a railway company,
// kept both in kilometres and miles.
type Length struct {
	kilometers decimal.Decimal
	miles      decimal.Decimal
}

// NewLength stores both values as given.
func NewLength(kilometers, miles decimal.Decimal) (Length, error) {
	v := &validate.Validator{}
	v.NonNegative("kilometers", kilometers).NonNegative("miles", miles)
	if err := v.Err(); err != nil {
		return Length{}, err
	}
	return Length{kilometers: kilometers, miles: miles}, nil
}

// OfKilometers derives the miles from kilometers.
func OfKilometers(kilometers decimal.Decimal) (Length, error) {
	miles := measure.Kilometers.To(measure.Miles).Convert(kilometers)
	return NewLength(kilometers, miles)
}

// OfMiles derives the kilometers from miles.
func OfMiles(miles decimal.Decimal) (Length, error) {
	kilometers := measure.Miles.To(measure.Kilometers).Convert(miles)
	return NewLength(kilometers, miles)
}

func (l Length) Kilometers() decimal.Decimal { return l.kilometers }
func (l Length) Miles() decimal.Decimal { return l.miles }

func (l Length) String() string {
	return fmt.Sprintf("kilometers: %s, miles: %s", l.kilometers, l.miles)
}

// Gauge is the distance between the rails of the tracks operated by a railway.
type Gauge struct {
	meters decimal.Decimal
}

// NewGauge requires a strictly positive width in metres.
func NewGauge(meters decimal.Decimal) (Gauge, error) {
	v := &validate.Validator{}
	if err := v.PositiveDecimal("gauge", meters).Err(); err != nil {
		return Gauge{}, err
	}
	return Gauge{meters: meters}, nil
}

func (g Gauge) Meters() decimal.Decimal { return g.meters }

// Millimeters returns the gauge as a [measure.Length].
func (g Gauge) Millimeters() measure.Length {
	l, _ := measure.Millimeter(g.meters.Mul(decimal.NewFromInt(1000)))
	return l
}

func (g Gauge) String() string { return g.meters.String() + " m" }
