// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem

import (
	"math/bits"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CarloMicieli/roundhouse/internal/core/measure"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

// # Length Over Buffer

// LengthOverBuffer is the overall model length in millimetres, buffers included.
type LengthOverBuffer struct {
	millimeters int
}

// NewLengthOverBuffer requires a strictly positive length.
func NewLengthOverBuffer(millimeters int) (LengthOverBuffer, error) {
	v := &validate.Validator{}
	if err := v.Positive(FieldLengthOverBuffer, millimeters).Err(); err != nil {
		return LengthOverBuffer{}, err
	}
	return LengthOverBuffer{millimeters: millimeters}, nil
}

func (l LengthOverBuffer) Value() int { return l.millimeters }

// Millimeters returns the length as a [measure.Length].
func (l LengthOverBuffer) Millimeters() measure.Length {
	length, _ := measure.Millimeter(decimal.NewFromInt(int64(l.millimeters)))
	return length
}

func (l LengthOverBuffer) String() string { return l.Millimeters().String() }

// # Coupling

// Coupling is the NEM coupler standard fitted to a model.
type Coupling string

const (
	CouplingNem355 Coupling = "NEM_355"
	CouplingNem356 Coupling = "NEM_356"
	CouplingNem357 Coupling = "NEM_357"
	CouplingNem359 Coupling = "NEM_359"
	CouplingNem360 Coupling = "NEM_360"
	CouplingNem362 Coupling = "NEM_362"
	CouplingNem365 Coupling = "NEM_365"
)

func ParseCoupling(raw string) (Coupling, error) {
	return validate.Enum(FieldCoupling, raw,
		CouplingNem355, CouplingNem356, CouplingNem357, CouplingNem359,
		CouplingNem360, CouplingNem362, CouplingNem365)
}

// # Radius

// Radius is the minimum curve radius a model can run through, in millimetres.
type Radius struct {
	millimeters decimal.Decimal
}

func NewRadius(millimeters decimal.Decimal) (Radius, error) {
	v := &validate.Validator{}
	if err := v.PositiveDecimal(FieldRadius, millimeters).Err(); err != nil {
		return Radius{}, err
	}
	return Radius{millimeters: millimeters}, nil
}

func (r Radius) Millimeters() measure.Length {
	length, _ := measure.Millimeter(r.millimeters)
	return length
}

func (r Radius) String() string { return r.Millimeters().String() }

// # Features

// Features is a set of feature flags declared by the manufacturer.
type Features uint8

const (
	FeatureFlywheelFitted Features = 1 << iota
	FeatureCloseCouplers
	FeatureMetalBody
	FeatureInteriorLights
	FeatureLights
	FeatureSpringBuffers
	FeatureDigitalShuntingCoupling
)

var featureNames = []string{
	"flywheel_fitted",
	"close_couplers",
	"metal_body",
	"interior_lights",
	"lights",
	"spring_buffers",
	"digital_shunting_coupling",
}

// With returns a copy of the set including flags.
func (f Features) With(flags ...Features) Features {
	for _, flag := range flags {
		f |= flag
	}
	return f
}

// Has reports whether every flag in flag is set.
func (f Features) Has(flag Features) bool { return f&flag == flag }

// Len returns the number of flags set.
func (f Features) Len() int { return bits.OnesCount8(uint8(f)) }

// String lists the flags set, e.g. "lights, metal_body". The empty set renders "none".
func (f Features) String() string {
	var names []string
	for i, name := range featureNames {
		if f.Has(Features(1) << i) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// # Tech Specs

// TechSpecs are the technical specifications of a rolling stock model.
type TechSpecs struct {
	minimumRadius *Radius
	coupling      *Coupling
	features      Features
}

// NewTechSpecs builds the specs. Both radius and coupling may be unknown.
func NewTechSpecs(minimumRadius *Radius, coupling *Coupling, features Features) TechSpecs {
	return TechSpecs{
		minimumRadius: pointer.Clone(minimumRadius),
		coupling:      pointer.Clone(coupling),
		features:      features,
	}
}

func (t TechSpecs) MinimumRadius() (Radius, bool) { return pointer.Get(t.minimumRadius) }
func (t TechSpecs) Coupling() (Coupling, bool) { return pointer.Get(t.coupling) }
func (t TechSpecs) Features() Features { return t.features }
