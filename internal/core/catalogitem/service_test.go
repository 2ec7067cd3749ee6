// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarloMicieli/roundhouse/internal/core/catalogitem"
	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/internal/platform/config"
	"github.com/CarloMicieli/roundhouse/internal/platform/logger"
	"github.com/CarloMicieli/roundhouse/pkg/pagination"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

func newService(t *testing.T, policy config.DuplicatePolicy) *catalogitem.Service {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{"CATALOG_DUPLICATE_POLICY": string(policy)})
	require.NoError(t, err)
	return catalogitem.NewService(catalogitem.NewMemoryStore(), cfg, logger.Discard())
}

func description(t *testing.T, item catalogitem.CatalogItem) string {
	t.Helper()
	d, _ := item.Description()
	return d
}

/*
TestService_Add_DuplicatePolicy resolves items sharing a business key.
*/
func TestService_Add_DuplicatePolicy(t *testing.T) {
	first := newItem(t, "ACME", "60000", catalogitem.Options{Description: pointer.To("first")})
	last := newItem(t, "ACME", "60000", catalogitem.Options{Description: pointer.To("last")})
	other := newItem(t, "ACME", "60001", catalogitem.Options{})

	t.Run("keep_first", func(t *testing.T) {
		service := newService(t, config.DuplicateKeepFirst)

		added, err := service.Add(first, last, other)
		require.NoError(t, err)
		assert.Equal(t, 2, added)

		got, err := service.Get(first.ID())
		require.NoError(t, err)
		assert.Equal(t, "first", description(t, got))
		assert.Equal(t, 1, got.Metadata().Version())
	})

	t.Run("keep_last", func(t *testing.T) {
		service := newService(t, config.DuplicateKeepLast)

		added, err := service.Add(first, last, other)
		require.NoError(t, err)
		assert.Equal(t, 3, added)

		got, err := service.Get(first.ID())
		require.NoError(t, err)
		assert.Equal(t, "last", description(t, got))
		assert.Equal(t, 2, got.Metadata().Version())

		n, err := service.Len()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("reject", func(t *testing.T) {
		service := newService(t, config.DuplicateReject)

		added, err := service.Add(first, last, other)
		assert.Equal(t, 1, added)
		assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

		n, err := service.Len()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

/*
TestService_Add_IDCollision rejects non-equal items whose ids collide, whatever
the duplicate policy.
*/
func TestService_Add_IDCollision(t *testing.T) {
	first := newItem(t, "ACME", "A.1", catalogitem.Options{Description: pointer.To("first")})
	colliding := newItem(t, "ACME", "A 1", catalogitem.Options{Description: pointer.To("colliding")})
	require.Equal(t, first.ID(), colliding.ID())

	policies := []config.DuplicatePolicy{config.DuplicateKeepFirst, config.DuplicateKeepLast, config.DuplicateReject}

	for _, policy := range policies {
		t.Run(string(policy), func(t *testing.T) {
			service := newService(t, policy)

			// 1. Add
			added, err := service.Add(first, colliding)
			assert.Equal(t, 1, added)
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
			assert.Contains(t, err.Error(), "acme-a-1")

			// 2. The stored item is untouched
			got, err := service.Get(first.ID())
			require.NoError(t, err)
			assert.Equal(t, "A.1", got.ItemNumber().String())
			assert.Equal(t, "first", description(t, got))
			assert.Equal(t, 1, got.Metadata().Version())

			n, err := service.Len()
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

/*
TestService_Add_Logs emits one event per decision.
*/
func TestService_Add_Logs(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"LOG_FORMAT": "text"})
	require.NoError(t, err)

	var buf bytes.Buffer
	service := catalogitem.NewService(catalogitem.NewMemoryStore(), cfg, logger.New(cfg, &buf))

	item := newItem(t, "ACME", "60000", catalogitem.Options{})
	_, err = service.Add(item, item)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "catalog_item_added"))
	assert.Equal(t, 1, strings.Count(out, "catalog_item_duplicate"))
	assert.Contains(t, out, "catalog_item_id=acme-60000")

	_, err = service.Add(newItem(t, "Acme", "60000", catalogitem.Options{}))
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "catalog_item_id_collision"))
}

/*
TestService_Get reports NOT_FOUND for unknown ids.
*/
func TestService_Get(t *testing.T) {
	service := newService(t, config.DuplicateKeepFirst)

	id, err := catalogitem.ParseID("acme-99999")
	require.NoError(t, err)

	_, err = service.Get(id)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_List pages through items ordered by brand and item number.
*/
func TestService_List(t *testing.T) {
	service := newService(t, config.DuplicateKeepFirst)

	_, err := service.Add(
		newItem(t, "Roco", "43858", catalogitem.Options{}),
		newItem(t, "ACME", "60002", catalogitem.Options{}),
		newItem(t, "ACME", "60000", catalogitem.Options{}),
		newItem(t, "ACME", "60001", catalogitem.Options{}),
	)
	require.NoError(t, err)

	ids := func(items []catalogitem.CatalogItem) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.ID().String()
		}
		return out
	}

	// 1. First page
	items, meta, err := service.List(pagination.Params{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"acme-60000", "acme-60001", "acme-60002"}, ids(items))
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 3, Total: 4, TotalPages: 2}, meta)

	// 2. Second page
	items, _, err = service.List(pagination.Params{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"roco-43858"}, ids(items))

	// 3. Past the end
	items, _, err = service.List(pagination.Params{Page: 5, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, items)

	// 4. Defaults
	_, meta, err = service.List(pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, 20, meta.Limit)
}

/*
TestService_ByCategory filters items.
*/
func TestService_ByCategory(t *testing.T) {
	service := newService(t, config.DuplicateKeepFirst)

	wagon, err := catalogitem.New(
		newBrand(t, "ACME"), newItemNumber(t, "45000"), catalogitem.CategoryFreightCars,
		[]catalogitem.RollingStock{newFreightCar(t)}, catalogitem.PowerMethodDC, newScale(t, "H0"), 1,
		catalogitem.Options{}, metadata.CreatedAt(createdAt),
	)
	require.NoError(t, err)

	_, err = service.Add(wagon, newItem(t, "ACME", "60000", catalogitem.Options{}))
	require.NoError(t, err)

	locos, err := service.Locomotives()
	require.NoError(t, err)
	require.Len(t, locos, 1)
	assert.Equal(t, "acme-60000", locos[0].ID().String())

	freight, err := service.ByCategory(catalogitem.CategoryFreightCars)
	require.NoError(t, err)
	require.Len(t, freight, 1)
	assert.False(t, freight[0].IsLocomotive())

	sets, err := service.ByCategory(catalogitem.CategoryTrainSets)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

/*
TestNewService_Defaults falls back to keep_first and the default page sizes.
*/
func TestNewService_Defaults(t *testing.T) {
	service := catalogitem.NewService(catalogitem.NewMemoryStore(), &config.Config{}, logger.Discard())

	item := newItem(t, "ACME", "60000", catalogitem.Options{})
	added, err := service.Add(item, item)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	_, meta, err := service.List(pagination.Params{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, pagination.DefaultLimit, meta.Limit)
}
