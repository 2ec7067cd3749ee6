// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scale

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/CarloMicieli/roundhouse/internal/core/measure"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
)

// TrackGauge classifies the distance between rails relative to the standard gauge.
type TrackGauge string

const (
	TrackGaugeBroad    TrackGauge = "BROAD"
	TrackGaugeMedium   TrackGauge = "MEDIUM"
	TrackGaugeMinimum  TrackGauge = "MINIMUM"
	TrackGaugeNarrow   TrackGauge = "NARROW"
	TrackGaugeStandard TrackGauge = "STANDARD"
)

var trackGauges = []TrackGauge{
	TrackGaugeBroad, TrackGaugeMedium, TrackGaugeMinimum, TrackGaugeNarrow, TrackGaugeStandard,
}

// ParseTrackGauge parses a track gauge.
func ParseTrackGauge(raw string) (TrackGauge, error) {
	return validate.Enum(FieldTrackGauge, raw, trackGauges...)
}

// Gauge is the model track gauge, in millimetres and inches.
type Gauge struct {
	trackGauge  TrackGauge
	millimeters decimal.Decimal
	inches      decimal.Decimal
}

// GaugeOfMillimeters derives the inches from mm.
func GaugeOfMillimeters(trackGauge TrackGauge, mm decimal.Decimal) (Gauge, error) {
	return newGauge(trackGauge, mm, measure.Millimeters.To(measure.Inches).Convert(mm))
}

// GaugeOfInches derives the millimetres from in.
func GaugeOfInches(trackGauge TrackGauge, in decimal.Decimal) (Gauge, error) {
	return newGauge(trackGauge, measure.Inches.To(measure.Millimeters).Convert(in), in)
}

func newGauge(trackGauge TrackGauge, mm, in decimal.Decimal) (Gauge, error) {
	allowed := make([]string, len(trackGauges))
	for i, g := range trackGauges {
		allowed[i] = string(g)
	}

	v := &validate.Validator{}
	v.OneOf(FieldTrackGauge, string(trackGauge), allowed...).
		PositiveDecimal(FieldGauge, mm)
	if err := v.Err(); err != nil {
		return Gauge{}, err
	}
	return Gauge{trackGauge: trackGauge, millimeters: mm, inches: in}, nil
}

func (g Gauge) TrackGauge() TrackGauge { return g.trackGauge }
func (g Gauge) Millimeters() decimal.Decimal { return g.millimeters }
func (g Gauge) Inches() decimal.Decimal { return g.inches }

func (g Gauge) String() string {
	return fmt.Sprintf("%s mm (%s)", g.millimeters, g.trackGauge)
}
