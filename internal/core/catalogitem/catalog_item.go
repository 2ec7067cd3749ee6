// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalogitem defines the products sold by model railway manufacturers.

# Identity

A catalog item is identified by its business key: the brand and the item
number. The [ID] is derived from them once, at construction, and two items
with the same key are the same entry even when every other field differs.
[Service] relies on this to deduplicate items coming from different sources.

# Rolling Stock

Each item contains one or more [RollingStock] values. The variant set is
closed and decoder fields only exist on powered variants.
*/
package catalogitem

import (
	"fmt"
	"slices"

	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
	"github.com/CarloMicieli/roundhouse/pkg/slice"
)

// # Field Identifiers

const (
	FieldID               = "catalog_item_id"
	FieldBrand            = "brand"
	FieldItemNumber       = "item_number"
	FieldCategory         = "category"
	FieldSubCategory      = "sub_category"
	FieldDescription      = "description"
	FieldDetails          = "details"
	FieldPowerMethod      = "power_method"
	FieldScale            = "scale"
	FieldDeliveryDate     = "delivery_date"
	FieldCount            = "count"
	FieldRollingStocks    = "rolling_stocks"
	FieldRollingStockID   = "rolling_stock_id"
	FieldTypeName         = "type_name"
	FieldClassName        = "class_name"
	FieldRoadNumber       = "road_number"
	FieldSeries           = "series"
	FieldDepot            = "depot"
	FieldLivery           = "livery"
	FieldRailway          = "railway"
	FieldEpoch            = "epoch"
	FieldControl          = "control"
	FieldDccInterface     = "dcc_interface"
	FieldServiceLevel     = "service_level"
	FieldLengthOverBuffer = "length_over_buffer"
	FieldCoupling         = "coupling"
	FieldRadius           = "minimum_radius"
)

// # Core Entity

// CatalogItem is a product in a manufacturer catalog.
type CatalogItem struct {
	id            ID
	brand         Brand
	itemNumber    ItemNumber
	category      Category
	description   *string
	details       *string
	scale         Scale
	powerMethod   PowerMethod
	rollingStocks []RollingStock
	deliveryDate  *DeliveryDate
	count         int
	metadata      metadata.Metadata
}

// Options holds the optional catalog item attributes.
type Options struct {
	Description  *string
	Details      *string
	DeliveryDate *DeliveryDate
}

// New validates and builds a [CatalogItem], deriving its [ID] from brand and itemNumber.
//
// # Rules
//
//   - At least one rolling stock is required and count must be positive.
//   - Unless the category is a set, every rolling stock must match it.
func New(
	brand Brand,
	itemNumber ItemNumber,
	category Category,
	rollingStocks []RollingStock,
	powerMethod PowerMethod,
	scale Scale,
	count int,
	opts Options,
	meta metadata.Metadata,
) (CatalogItem, error) {
	v := &validate.Validator{}
	v.Custom(FieldBrand, brand.ID().IsZero() || brand.Name() == "", "This field is required").
		Custom(FieldItemNumber, itemNumber.IsZero(), "This field is required").
		OneOf(FieldCategory, string(category), names(categories)...).
		OneOf(FieldPowerMethod, string(powerMethod), string(PowerMethodAC), string(PowerMethodDC)).
		Custom(FieldScale, scale.ID().IsZero(), "This field is required").
		Positive(FieldCount, count).
		Custom(FieldRollingStocks, len(rollingStocks) == 0, "At least one rolling stock is required").
		Custom(FieldRollingStocks, slice.Any(rollingStocks, isNil), "Rolling stocks must not be nil")

	if !category.IsSet() {
		mismatched := slice.Any(rollingStocks, func(rs RollingStock) bool {
			return rs != nil && rs.Category() != category
		})
		v.Custom(FieldRollingStocks, mismatched, fmt.Sprintf("Every rolling stock must belong to %s", category))
	}

	if opts.Description != nil {
		v.MaxLen(FieldDescription, *opts.Description, 2500)
	}
	if opts.Details != nil {
		v.MaxLen(FieldDetails, *opts.Details, 2500)
	}

	if err := v.Err(); err != nil {
		return CatalogItem{}, err
	}

	return CatalogItem{
		id:            newID(brand, itemNumber),
		brand:         brand,
		itemNumber:    itemNumber,
		category:      category,
		description:   pointer.Clone(opts.Description),
		details:       pointer.Clone(opts.Details),
		scale:         scale,
		powerMethod:   powerMethod,
		rollingStocks: slices.Clone(rollingStocks),
		deliveryDate:  pointer.Clone(opts.DeliveryDate),
		count:         count,
		metadata:      meta,
	}, nil
}

func (c CatalogItem) ID() ID { return c.id }
func (c CatalogItem) Brand() Brand { return c.brand }
func (c CatalogItem) ItemNumber() ItemNumber { return c.itemNumber }
func (c CatalogItem) Category() Category { return c.category }
func (c CatalogItem) Scale() Scale { return c.scale }
func (c CatalogItem) PowerMethod() PowerMethod { return c.powerMethod }
func (c CatalogItem) Count() int { return c.count }
func (c CatalogItem) Metadata() metadata.Metadata { return c.metadata }

func (c CatalogItem) Description() (string, bool) { return pointer.Get(c.description) }
func (c CatalogItem) Details() (string, bool) { return pointer.Get(c.details) }
func (c CatalogItem) DeliveryDate() (DeliveryDate, bool) { return pointer.Get(c.deliveryDate) }

// RollingStocks returns a copy of the contained rolling stock, in catalog order.
func (c CatalogItem) RollingStocks() []RollingStock { return slices.Clone(c.rollingStocks) }

// IsLocomotive reports whether the item is in the locomotives category.
func (c CatalogItem) IsLocomotive() bool { return c.category == CategoryLocomotives }

// WithMetadata returns a copy of the item with meta. Identity is unchanged.
func (c CatalogItem) WithMetadata(meta metadata.Metadata) CatalogItem {
	c.rollingStocks = slices.Clone(c.rollingStocks)
	c.metadata = meta
	return c
}

func isNil(rs RollingStock) bool { return rs == nil }

// # Identity

// Equal reports whether both items share the same brand and item number.
// Descriptive fields and rolling stock are ignored.
func (c CatalogItem) Equal(other CatalogItem) bool {
	return c.Compare(other) == 0
}

// Compare orders items by brand, then by item number.
func (c CatalogItem) Compare(other CatalogItem) int {
	if r := c.brand.Compare(other.brand); r != 0 {
		return r
	}
	return c.itemNumber.Compare(other.itemNumber)
}

// String renders "<brand> <item number>", e.g. "ACME 60000".
func (c CatalogItem) String() string {
	return fmt.Sprintf("%s %s", c.brand, c.itemNumber)
}
