// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package measure defines linear measure units and the [Length] value type.

Conversions go through a single table of millimetre factors, so converting
A to B and back uses the same pair of factors and round-trips within
[constants.DecimalPrecision] digits.
*/
package measure

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/internal/platform/constants"
)

// # Measure Units

// Unit is a linear measure unit. The zero value is [Millimeters].
type Unit int

const (
	Millimeters Unit = iota
	Inches
	Miles
	Kilometers
)

// millimetersPer holds how many millimetres make one unit.
var millimetersPer = map[Unit]decimal.Decimal{
	Millimeters: decimal.NewFromInt(1),
	Inches:      decimal.RequireFromString("25.4"),
	Miles:       decimal.NewFromInt(1_609_344),
	Kilometers:  decimal.NewFromInt(1_000_000),
}

var unitNames = map[Unit]string{
	Millimeters: "MILLIMETERS",
	Inches:      "INCHES",
	Miles:       "MILES",
	Kilometers:  "KILOMETERS",
}

var unitSymbols = map[Unit]string{
	Millimeters: "mm",
	Inches:      "in",
	Miles:       "mi",
	Kilometers:  "km",
}

// IsValid reports whether u is one of the defined units.
func (u Unit) IsValid() bool {
	_, ok := millimetersPer[u]
	return ok
}

// Symbol returns the short symbol used when rendering lengths (e.g. "mm").
func (u Unit) Symbol() string {
	return unitSymbols[u]
}

// String returns the unit name (e.g. "MILLIMETERS").
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseUnit accepts either the unit name or its symbol, case-insensitively.
func ParseUnit(raw string) (Unit, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Millimeters, apperr.Blank("measure unit")
	}

	for u, name := range unitNames {
		if strings.EqualFold(value, name) || strings.EqualFold(value, unitSymbols[u]) {
			return u, nil
		}
	}

	return Millimeters, apperr.InvalidValue("measure unit", value,
		"MILLIMETERS", "INCHES", "MILES", "KILOMETERS", "mm", "in", "mi", "km")
}

// # Conversion

// Converter converts quantities between two fixed units.
type Converter struct {
	from Unit
	to   Unit
}

// To returns the converter from u to target.
//
// Example:
//
//	measure.Inches.To(measure.Millimeters).Convert(decimal.NewFromInt(1)) // 25.4
func (u Unit) To(target Unit) Converter {
	return Converter{from: u, to: target}
}

// Convert applies the conversion factor to value.
func (c Converter) Convert(value decimal.Decimal) decimal.Decimal {
	if c.from == c.to {
		return value
	}
	return value.
		Mul(millimetersPer[c.from]).
		DivRound(millimetersPer[c.to], constants.DecimalPrecision)
}
