// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/internal/platform/config"
	"github.com/CarloMicieli/roundhouse/pkg/pagination"
	"github.com/CarloMicieli/roundhouse/pkg/slice"
)

// Service is a deduplicating catalog. Items sharing a business key are
// resolved with the configured [config.DuplicatePolicy].
//
// It is synchronous and not safe for concurrent use.
type Service struct {
	repo        Repository
	policy      config.DuplicatePolicy
	pageSize    int
	maxPageSize int
	logger      *slog.Logger
	now         func() time.Time
}

// NewService wires a catalog on top of repo. Zero page sizes in cfg fall back
// to the pagination defaults and an empty policy means keep_first.
func NewService(repo Repository, cfg *config.Config, logger *slog.Logger) *Service {
	service := &Service{
		repo:        repo,
		policy:      cfg.DuplicatePolicy,
		pageSize:    cfg.PageSize,
		maxPageSize: cfg.MaxPageSize,
		logger:      logger,
		now:         time.Now,
	}

	if service.policy == "" {
		service.policy = config.DuplicateKeepFirst
	}
	if service.pageSize < 1 {
		service.pageSize = pagination.DefaultLimit
	}
	if service.maxPageSize < service.pageSize {
		service.maxPageSize = max(pagination.MaxLimit, service.pageSize)
	}

	return service
}

// Add stores items in order and returns how many were written.
//
// # Duplicates
//
// An item is a duplicate when it is [CatalogItem.Equal] to the stored item
// with the same ID. A non-equal item with that ID fails with CONFLICT under
// every policy.
//
//   - keep_first: later duplicates are skipped.
//   - keep_last: the stored item is replaced and its metadata version bumped.
//   - reject: Add stops at the first duplicate with a CONFLICT error.
func (service *Service) Add(items ...CatalogItem) (int, error) {
	added := 0

	for _, item := range items {
		existing, err := service.repo.GetCatalogItem(item.ID())
		switch {
		case apperr.HasCode(err, apperr.CodeNotFound):
			if err := service.repo.SaveCatalogItem(item); err != nil {
				return added, err
			}
			added++
			service.logger.Info("catalog_item_added", slog.String("catalog_item_id", item.ID().String()))
			continue
		case err != nil:
			return added, err
		}

		if !existing.Equal(item) {
			service.logger.Warn("catalog_item_id_collision",
				slog.String("catalog_item_id", item.ID().String()),
				slog.String("existing", existing.String()),
				slog.String("item", item.String()),
			)
			return added, apperr.Conflict(fmt.Sprintf("Catalog item id %s is already used by %s", item.ID(), existing))
		}

		switch service.policy {
		case config.DuplicateKeepLast:
			replaced := item.WithMetadata(existing.Metadata().UpdatedAt(service.now()))
			if err := service.repo.SaveCatalogItem(replaced); err != nil {
				return added, err
			}
			added++
			service.logger.Info("catalog_item_replaced",
				slog.String("catalog_item_id", item.ID().String()),
				slog.Int("version", replaced.Metadata().Version()),
			)
		case config.DuplicateReject:
			service.logger.Warn("catalog_item_duplicate",
				slog.String("catalog_item_id", item.ID().String()),
				slog.String("policy", string(service.policy)),
			)
			return added, apperr.Conflict(fmt.Sprintf("Catalog item %s already exists", item.ID()))
		default:
			service.logger.Warn("catalog_item_duplicate",
				slog.String("catalog_item_id", item.ID().String()),
				slog.String("policy", string(service.policy)),
			)
		}
	}

	return added, nil
}

func (service *Service) Get(id ID) (CatalogItem, error) {
	return service.repo.GetCatalogItem(id)
}

// List returns one page of items ordered by brand, then item number.
func (service *Service) List(params pagination.Params) ([]CatalogItem, pagination.Meta, error) {
	items, err := service.sorted()
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	params = params.Normalize(service.pageSize, service.maxPageSize)
	start, end := params.Window(len(items))

	return items[start:end], pagination.NewMeta(params.Page, params.Limit, len(items)), nil
}

// ByCategory returns the items of category, ordered like [Service.List].
func (service *Service) ByCategory(category Category) ([]CatalogItem, error) {
	items, err := service.sorted()
	if err != nil {
		return nil, err
	}
	return slice.Filter(items, func(item CatalogItem) bool {
		return item.Category() == category
	}), nil
}

// Locomotives is a shortcut for the locomotives category.
func (service *Service) Locomotives() ([]CatalogItem, error) {
	return service.ByCategory(CategoryLocomotives)
}

// Len returns the number of stored items.
func (service *Service) Len() (int, error) {
	return service.repo.CountCatalogItems()
}

func (service *Service) sorted() ([]CatalogItem, error) {
	items, err := service.repo.ListCatalogItems()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, CatalogItem.Compare)
	return items, nil
}
