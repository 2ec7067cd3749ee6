// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CarloMicieli/roundhouse/internal/core/brand"
	"github.com/CarloMicieli/roundhouse/internal/core/catalogitem"
	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/core/railway"
	"github.com/CarloMicieli/roundhouse/internal/core/scale"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

var (
	createdAt = time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	epochIV   = catalogitem.MustEpoch("IV")
)

func newBrand(t *testing.T, name string) catalogitem.Brand {
	t.Helper()
	id, err := brand.NewID(name)
	require.NoError(t, err)
	return catalogitem.NewBrand(id, name)
}

func newScale(t *testing.T, name string) catalogitem.Scale {
	t.Helper()
	id, err := scale.NewID(name)
	require.NoError(t, err)
	return catalogitem.NewScale(id, name)
}

func newRailway(t *testing.T, name string) catalogitem.Railway {
	t.Helper()
	id, err := railway.NewID(name)
	require.NoError(t, err)
	return catalogitem.NewRailway(id, name)
}

func newItemNumber(t *testing.T, raw string) catalogitem.ItemNumber {
	t.Helper()
	n, err := catalogitem.NewItemNumber(raw)
	require.NoError(t, err)
	return n
}

func newLocomotive(t *testing.T, roadNumber string) catalogitem.Locomotive {
	t.Helper()
	control := catalogitem.ControlDccReady
	dcc := catalogitem.DccInterfaceNem652

	loco, err := catalogitem.NewLocomotive(
		catalogitem.NewRollingStockID(),
		"E.656",
		roadNumber,
		newRailway(t, "FS"),
		epochIV,
		catalogitem.LocomotiveTypeElectric,
		catalogitem.LocomotiveOptions{
			Details: catalogitem.Details{Livery: pointer.To("blu/grigio")},
			Powered: catalogitem.Powered{Control: &control, DccInterface: &dcc},
			Series:  pointer.To("I serie"),
		},
	)
	require.NoError(t, err)
	return loco
}

func newFreightCar(t *testing.T) catalogitem.FreightCar {
	t.Helper()
	car, err := catalogitem.NewFreightCar(
		catalogitem.NewRollingStockID(),
		"Gbs",
		newRailway(t, "FS"),
		epochIV,
		catalogitem.FreightCarOptions{},
	)
	require.NoError(t, err)
	return car
}

// newItem builds a locomotive item for the given brand and item number.
func newItem(t *testing.T, brandName, itemNumber string, opts catalogitem.Options) catalogitem.CatalogItem {
	t.Helper()
	item, err := catalogitem.New(
		newBrand(t, brandName),
		newItemNumber(t, itemNumber),
		catalogitem.CategoryLocomotives,
		[]catalogitem.RollingStock{newLocomotive(t, "E.656 077")},
		catalogitem.PowerMethodDC,
		newScale(t, "H0"),
		1,
		opts,
		metadata.CreatedAt(createdAt),
	)
	require.NoError(t, err)
	return item
}
