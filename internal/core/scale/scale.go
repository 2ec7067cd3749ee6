// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package scale defines the modelling scales, such as H0 (1:87) or N (1:160).

Scales are ordered by model size: bigger models come first.
*/
package scale

import (
	"fmt"
	"slices"
	"strings"

	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

// # Field Identifiers

const (
	FieldID         = "scale_id"
	FieldName       = "name"
	FieldRatio      = "ratio"
	FieldGauge      = "gauge"
	FieldTrackGauge = "track_gauge"
	FieldStandards  = "standards"
)

// # Standards

// Standard is a body publishing modelling norms.
type Standard string

const (
	StandardBritish  Standard = "BRITISH"
	StandardJapanese Standard = "JAPANESE"
	StandardNEM      Standard = "NEM"
	StandardNMRA     Standard = "NMRA"
)

// ParseStandard parses a standard name.
func ParseStandard(raw string) (Standard, error) {
	return validate.Enum(FieldStandards, raw, StandardBritish, StandardJapanese, StandardNEM, StandardNMRA)
}

// # Core Entity

// Scale is a modelling scale.
type Scale struct {
	id          ID
	name        string
	description *string
	ratio       Ratio
	gauge       Gauge
	standards   []Standard
	metadata    metadata.Metadata
}

// New validates and builds a [Scale]. Duplicate standards are collapsed.
func New(id ID, name string, description *string, ratio Ratio, gauge Gauge, standards []Standard, meta metadata.Metadata) (Scale, error) {
	v := &validate.Validator{}
	v.Custom(FieldID, id.IsZero(), "This field is required").
		Required(FieldName, name).
		MaxLen(FieldName, name, 50).
		Custom(FieldRatio, ratio.value.IsZero(), "This field is required").
		Custom(FieldGauge, gauge.millimeters.IsZero(), "This field is required")

	for _, s := range standards {
		v.OneOf(FieldStandards, string(s),
			string(StandardBritish), string(StandardJapanese), string(StandardNEM), string(StandardNMRA))
	}

	if err := v.Err(); err != nil {
		return Scale{}, err
	}

	set := slices.Clone(standards)
	slices.Sort(set)

	return Scale{
		id:          id,
		name:        strings.TrimSpace(name),
		description: pointer.Clone(description),
		ratio:       ratio,
		gauge:       gauge,
		standards:   slices.Compact(set),
		metadata:    meta,
	}, nil
}

func (s Scale) ID() ID { return s.id }
func (s Scale) Name() string { return s.name }
func (s Scale) Description() (string, bool) { return pointer.Get(s.description) }
func (s Scale) Ratio() Ratio { return s.ratio }
func (s Scale) Gauge() Gauge { return s.gauge }
func (s Scale) Metadata() metadata.Metadata { return s.metadata }

// Standards returns a sorted copy of the standards this scale belongs to.
func (s Scale) Standards() []Standard { return slices.Clone(s.standards) }

// Follows reports whether the scale is part of standard.
func (s Scale) Follows(standard Standard) bool {
	return slices.Contains(s.standards, standard)
}

// Compare orders scales by ratio (bigger models first), then by name.
func (s Scale) Compare(other Scale) int {
	if c := s.ratio.Compare(other.ratio); c != 0 {
		return -c
	}
	return strings.Compare(s.name, other.name)
}

// String renders "<name> (<ratio>)", e.g. "H0 (1:87)".
func (s Scale) String() string {
	return fmt.Sprintf("%s (%s)", s.name, s.ratio)
}
