// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scale

import (
	"github.com/shopspring/decimal"

	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
)

// Ratio is the denominator of a scale ratio: 87 stands for 1:87.
type Ratio struct {
	value decimal.Decimal
}

// NewRatio requires a strictly positive denominator.
func NewRatio(value decimal.Decimal) (Ratio, error) {
	v := &validate.Validator{}
	if err := v.PositiveDecimal(FieldRatio, value).Err(); err != nil {
		return Ratio{}, err
	}
	return Ratio{value: value}, nil
}

// Value returns the denominator.
func (r Ratio) Value() decimal.Decimal { return r.value }

// Compare orders ratios by model size: 1:87 is greater than 1:160, because
// a smaller denominator means a bigger model.
func (r Ratio) Compare(other Ratio) int {
	return other.value.Cmp(r.value)
}

// String renders "1:<value>", e.g. "1:87" or "1:22.5".
func (r Ratio) String() string { return "1:" + r.value.String() }
