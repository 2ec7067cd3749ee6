// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CarloMicieli/roundhouse/internal/core/brand"
	"github.com/CarloMicieli/roundhouse/internal/core/railway"
	"github.com/CarloMicieli/roundhouse/internal/core/scale"
	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
)

// # Item Number

// ItemNumber is the manufacturer code for a catalog item, e.g. "60000".
type ItemNumber struct {
	value string
}

// NewItemNumber trims raw and rejects blank values.
func NewItemNumber(raw string) (ItemNumber, error) {
	raw = strings.TrimSpace(raw)
	v := &validate.Validator{}
	v.Required(FieldItemNumber, raw).MaxLen(FieldItemNumber, raw, 25)
	if err := v.Err(); err != nil {
		return ItemNumber{}, err
	}
	return ItemNumber{value: raw}, nil
}

func (n ItemNumber) String() string { return n.value }
func (n ItemNumber) IsZero() bool { return n.value == "" }
func (n ItemNumber) Compare(other ItemNumber) int { return strings.Compare(n.value, other.value) }

// # Delivery Date

// DeliveryDate is the announced delivery of a catalog item: a year, optionally
// narrowed to a quarter.
type DeliveryDate struct {
	year    int
	quarter int
}

// ByYear builds a year-only delivery date.
func ByYear(year int) (DeliveryDate, error) {
	return newDeliveryDate(year, 0)
}

// ByQuarter builds a delivery date for quarter 1 to 4 of year.
func ByQuarter(year, quarter int) (DeliveryDate, error) {
	v := &validate.Validator{}
	if err := v.Custom(FieldDeliveryDate, quarter < 1 || quarter > 4, "Quarter must be between 1 and 4").Err(); err != nil {
		return DeliveryDate{}, err
	}
	return newDeliveryDate(year, quarter)
}

func newDeliveryDate(year, quarter int) (DeliveryDate, error) {
	v := &validate.Validator{}
	if err := v.Custom(FieldDeliveryDate, year < 1900 || year > 2999, "Year must be between 1900 and 2999").Err(); err != nil {
		return DeliveryDate{}, err
	}
	return DeliveryDate{year: year, quarter: quarter}, nil
}

// ParseDeliveryDate accepts "2022" or "2022/Q3".
func ParseDeliveryDate(raw string) (DeliveryDate, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DeliveryDate{}, apperr.Blank(FieldDeliveryDate)
	}

	yearText, quarterText, hasQuarter := strings.Cut(raw, "/")
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return DeliveryDate{}, invalidDeliveryDate(raw, err)
	}
	if !hasQuarter {
		return ByYear(year)
	}

	if len(quarterText) != 2 || quarterText[0] != 'Q' {
		return DeliveryDate{}, invalidDeliveryDate(raw, nil)
	}
	quarter, err := strconv.Atoi(quarterText[1:])
	if err != nil {
		return DeliveryDate{}, invalidDeliveryDate(raw, err)
	}
	return ByQuarter(year, quarter)
}

func invalidDeliveryDate(raw string, cause error) error {
	return &apperr.AppError{
		Code:    apperr.CodeInvalidValue,
		Message: fmt.Sprintf("invalid delivery date %q [expected YYYY or YYYY/Qn]", raw),
		Cause:   cause,
	}
}

func (d DeliveryDate) Year() int { return d.year }

// Quarter returns the quarter, when the date has one.
func (d DeliveryDate) Quarter() (int, bool) { return d.quarter, d.quarter != 0 }

func (d DeliveryDate) String() string {
	if d.quarter == 0 {
		return strconv.Itoa(d.year)
	}
	return fmt.Sprintf("%d/Q%d", d.year, d.quarter)
}

// # References

// Brand is the manufacturer as seen by a catalog item.
type Brand struct {
	id   brand.ID
	name string
}

// NewBrand builds a brand reference. The name is the basis for catalog item ids.
func NewBrand(id brand.ID, name string) Brand {
	return Brand{id: id, name: strings.TrimSpace(name)}
}

// BrandOf references an existing brand entity.
func BrandOf(b brand.Brand) Brand { return NewBrand(b.ID(), b.Name()) }

func (b Brand) ID() brand.ID { return b.id }
func (b Brand) Name() string { return b.name }
func (b Brand) String() string { return b.name }

// Compare orders brands by id, then by name.
func (b Brand) Compare(other Brand) int {
	if c := b.id.Compare(other.id); c != 0 {
		return c
	}
	return strings.Compare(b.name, other.name)
}

// Scale is the modelling scale as seen by a catalog item.
type Scale struct {
	id   scale.ID
	name string
}

func NewScale(id scale.ID, name string) Scale {
	return Scale{id: id, name: strings.TrimSpace(name)}
}

// ScaleOf references an existing scale entity.
func ScaleOf(s scale.Scale) Scale { return NewScale(s.ID(), s.Name()) }

func (s Scale) ID() scale.ID { return s.id }
func (s Scale) Name() string { return s.name }
func (s Scale) String() string { return s.name }

// Railway is the railway company as seen by a rolling stock.
type Railway struct {
	id   railway.ID
	name string
}

func NewRailway(id railway.ID, name string) Railway {
	return Railway{id: id, name: strings.TrimSpace(name)}
}

// RailwayOf references an existing railway entity.
func RailwayOf(r railway.Railway) Railway { return NewRailway(r.ID(), r.Name()) }

func (r Railway) ID() railway.ID { return r.id }
func (r Railway) Name() string { return r.name }
func (r Railway) String() string { return r.name }
