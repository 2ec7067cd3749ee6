// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarloMicieli/roundhouse/internal/core/catalogitem"
	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

/*
TestNew builds a locomotive item and derives its id from the business key.
*/
func TestNew(t *testing.T) {
	// 1. Build
	delivery, err := catalogitem.ParseDeliveryDate("2022/Q3")
	require.NoError(t, err)

	item := newItem(t, "ACME", "60000", catalogitem.Options{
		Description:  pointer.To("Electric locomotive E.656"),
		DeliveryDate: &delivery,
	})

	// 2. Identity
	assert.Equal(t, "acme-60000", item.ID().String())
	assert.Equal(t, "ACME 60000", item.String())

	// 3. Projections
	assert.Equal(t, "ACME", item.Brand().Name())
	assert.Equal(t, "60000", item.ItemNumber().String())
	assert.Equal(t, catalogitem.CategoryLocomotives, item.Category())
	assert.True(t, item.IsLocomotive())
	assert.Equal(t, catalogitem.PowerMethodDC, item.PowerMethod())
	assert.Equal(t, "H0", item.Scale().Name())
	assert.Equal(t, 1, item.Count())
	assert.Equal(t, 1, item.Metadata().Version())

	description, ok := item.Description()
	assert.True(t, ok)
	assert.Equal(t, "Electric locomotive E.656", description)

	_, ok = item.Details()
	assert.False(t, ok)

	got, ok := item.DeliveryDate()
	assert.True(t, ok)
	assert.Equal(t, "2022/Q3", got.String())
}

/*
TestNew_Invalid collects every failing field.
*/
func TestNew_Invalid(t *testing.T) {
	_, err := catalogitem.New(
		catalogitem.Brand{},
		catalogitem.ItemNumber{},
		"TRAMS",
		nil,
		"DCC",
		catalogitem.Scale{},
		0,
		catalogitem.Options{},
		metadata.CreatedAt(createdAt),
	)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)

	for _, field := range []string{
		catalogitem.FieldBrand,
		catalogitem.FieldItemNumber,
		catalogitem.FieldCategory,
		catalogitem.FieldPowerMethod,
		catalogitem.FieldScale,
		catalogitem.FieldCount,
		catalogitem.FieldRollingStocks,
	} {
		assert.True(t, appErr.HasField(field), field)
	}
}

/*
TestNew_CategoryMismatch rejects rolling stock that does not match the
category, unless the item is a set.
*/
func TestNew_CategoryMismatch(t *testing.T) {
	stocks := []catalogitem.RollingStock{newLocomotive(t, "E.656 077"), newFreightCar(t)}

	build := func(category catalogitem.Category) error {
		_, err := catalogitem.New(
			newBrand(t, "ACME"), newItemNumber(t, "70000"), category, stocks,
			catalogitem.PowerMethodDC, newScale(t, "H0"), 1, catalogitem.Options{}, metadata.CreatedAt(createdAt),
		)
		return err
	}

	err := build(catalogitem.CategoryLocomotives)
	require.Error(t, err)
	assert.True(t, apperr.As(err).HasField(catalogitem.FieldRollingStocks))

	assert.NoError(t, build(catalogitem.CategoryTrainSets))
	assert.NoError(t, build(catalogitem.CategoryStarterSets))
}

/*
TestCatalogItem_Equal ignores every descriptive field.
*/
func TestCatalogItem_Equal(t *testing.T) {
	// 1. Same business key, different description and rolling stock
	a := newItem(t, "ACME", "60000", catalogitem.Options{Description: pointer.To("first source")})
	b, err := catalogitem.New(
		newBrand(t, "ACME"), newItemNumber(t, "60000"), catalogitem.CategoryLocomotives,
		[]catalogitem.RollingStock{newLocomotive(t, "E.656 077"), newLocomotive(t, "E.656 078")},
		catalogitem.PowerMethodDC, newScale(t, "H0"), 2,
		catalogitem.Options{Details: pointer.To("second source")}, metadata.CreatedAt(createdAt),
	)
	require.NoError(t, err)
	require.Len(t, b.RollingStocks(), 2)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Zero(t, a.Compare(b))
	assert.Equal(t, a.ID(), b.ID())

	// 2. Different item number
	c := newItem(t, "ACME", "60001", catalogitem.Options{})
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.ID(), c.ID())
}

/*
TestCatalogItem_IDCollision shows distinct business keys can share a slug id.
*/
func TestCatalogItem_IDCollision(t *testing.T) {
	tests := []struct {
		name  string
		left  [2]string
		right [2]string
		id    string
	}{
		{"item_number_punctuation", [2]string{"ACME", "A.1"}, [2]string{"ACME", "A 1"}, "acme-a-1"},
		{"brand_name_case", [2]string{"ACME", "60000"}, [2]string{"Acme", "60000"}, "acme-60000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newItem(t, tt.left[0], tt.left[1], catalogitem.Options{})
			b := newItem(t, tt.right[0], tt.right[1], catalogitem.Options{})

			assert.Equal(t, tt.id, a.ID().String())
			assert.Equal(t, a.ID(), b.ID())
			assert.False(t, a.Equal(b))
			assert.NotZero(t, a.Compare(b))
		})
	}
}

/*
TestCatalogItem_Compare orders by brand first, then item number.
*/
func TestCatalogItem_Compare(t *testing.T) {
	items := []catalogitem.CatalogItem{
		newItem(t, "Roco", "43858", catalogitem.Options{}),
		newItem(t, "ACME", "60001", catalogitem.Options{}),
		newItem(t, "ACME", "60000", catalogitem.Options{}),
	}
	slices.SortFunc(items, catalogitem.CatalogItem.Compare)

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID().String()
	}
	assert.Equal(t, []string{"acme-60000", "acme-60001", "roco-43858"}, ids)
}

/*
TestCatalogItem_RollingStocks returns a copy.
*/
func TestCatalogItem_RollingStocks(t *testing.T) {
	item := newItem(t, "ACME", "60000", catalogitem.Options{})

	stocks := item.RollingStocks()
	require.Len(t, stocks, 1)
	stocks[0] = newFreightCar(t)

	assert.Equal(t, catalogitem.CategoryLocomotives, item.RollingStocks()[0].Category())
}

/*
TestCatalogItem_WithMetadata keeps the identity.
*/
func TestCatalogItem_WithMetadata(t *testing.T) {
	item := newItem(t, "ACME", "60000", catalogitem.Options{})
	updated := item.WithMetadata(item.Metadata().UpdatedAt(createdAt.AddDate(0, 1, 0)))

	assert.Equal(t, 2, updated.Metadata().Version())
	assert.Equal(t, 1, item.Metadata().Version())
	assert.True(t, item.Equal(updated))
}
