// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem

import (
	"slices"
	"strings"

	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
)

// # Epoch

// epochs lists the NEM 806 periods with their sub-periods, in historical order.
var epochs = []string{
	"I", "Ia", "Ib",
	"II", "IIa", "IIb", "IIc",
	"III", "IIIa", "IIIb",
	"IV", "IVa", "IVb",
	"V", "Va", "Vb", "Vc", "Vm",
	"VI",
}

// Epoch is the railway operating period reproduced by a model. It is a single
// period ("IV", "IIIa") or a span of two periods ("IV/V").
type Epoch struct {
	from string
	to   string
}

// ParseEpoch parses a period or a span such as "IV/V". A span must go forward in time.
func ParseEpoch(raw string) (Epoch, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Epoch{}, apperr.Blank(FieldEpoch)
	}

	from, to, isSpan := strings.Cut(raw, "/")
	if !slices.Contains(epochs, from) || (isSpan && !slices.Contains(epochs, to)) {
		return Epoch{}, apperr.InvalidValue(FieldEpoch, raw, epochs...)
	}

	if isSpan {
		v := &validate.Validator{}
		v.Custom(FieldEpoch, slices.Index(epochs, to) <= slices.Index(epochs, from), "The second period must follow the first")
		if err := v.Err(); err != nil {
			return Epoch{}, err
		}
	}
	return Epoch{from: from, to: to}, nil
}

// MustEpoch is like [ParseEpoch] but panics on error. Meant for package level fixtures.
func MustEpoch(raw string) Epoch {
	e, err := ParseEpoch(raw)
	if err != nil {
		panic(err)
	}
	return e
}

// IsZero reports whether the epoch was never parsed.
func (e Epoch) IsZero() bool { return e.from == "" }

// IsSpan reports whether the epoch covers two periods.
func (e Epoch) IsSpan() bool { return e.to != "" }

func (e Epoch) String() string {
	if e.to == "" {
		return e.from
	}
	return e.from + "/" + e.to
}

// # Service Level

// ServiceLevel is the class of accommodation offered by a passenger car.
type ServiceLevel string

const (
	ServiceLevelFirstClass               ServiceLevel = "1cl"
	ServiceLevelSecondClass              ServiceLevel = "2cl"
	ServiceLevelThirdClass               ServiceLevel = "3cl"
	ServiceLevelFirstAndSecondClass      ServiceLevel = "1cl/2cl"
	ServiceLevelSecondAndThirdClass      ServiceLevel = "2cl/3cl"
	ServiceLevelFirstSecondAndThirdClass ServiceLevel = "1cl/2cl/3cl"
)

var serviceLevels = []ServiceLevel{
	ServiceLevelFirstClass, ServiceLevelSecondClass, ServiceLevelThirdClass,
	ServiceLevelFirstAndSecondClass, ServiceLevelSecondAndThirdClass, ServiceLevelFirstSecondAndThirdClass,
}

func ParseServiceLevel(raw string) (ServiceLevel, error) {
	return validate.Enum(FieldServiceLevel, raw, serviceLevels...)
}
