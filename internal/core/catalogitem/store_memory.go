// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem

import (
	"maps"
	"slices"

	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
)

// MemoryStore is a map backed [Repository].
//
// It is not safe for concurrent use.
type MemoryStore struct {
	items map[ID]CatalogItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[ID]CatalogItem)}
}

func (store *MemoryStore) GetCatalogItem(id ID) (CatalogItem, error) {
	item, ok := store.items[id]
	if !ok {
		return CatalogItem{}, apperr.NotFound("Catalog item")
	}
	return item, nil
}

// SaveCatalogItem inserts item, replacing any item with the same ID.
func (store *MemoryStore) SaveCatalogItem(item CatalogItem) error {
	store.items[item.ID()] = item
	return nil
}

// ListCatalogItems returns the stored items in no particular order.
func (store *MemoryStore) ListCatalogItems() ([]CatalogItem, error) {
	return slices.Collect(maps.Values(store.items)), nil
}

func (store *MemoryStore) CountCatalogItems() (int, error) {
	return len(store.items), nil
}
