// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalog loads a sample catalog and logs its listing.
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Initialize structured logger.
//  3. Wire the in-memory catalog service.
//  4. Build the sample items and add them under the duplicate policy.
//  5. Log the first page of the listing.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/CarloMicieli/roundhouse/internal/core/brand"
	"github.com/CarloMicieli/roundhouse/internal/core/catalogitem"
	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/core/railway"
	"github.com/CarloMicieli/roundhouse/internal/core/scale"
	"github.com/CarloMicieli/roundhouse/internal/platform/config"
	"github.com/CarloMicieli/roundhouse/internal/platform/constants"
	"github.com/CarloMicieli/roundhouse/internal/platform/logger"
	"github.com/CarloMicieli/roundhouse/pkg/pagination"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

func main() {
	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		slog.Error("startup failure", slog.String("context", "load configuration"), slog.Any("error", err))
		os.Exit(1)
	}

	// ── 2. Logger ─────────────────────────────────────────────────────────
	log := logger.New(cfg, os.Stdout)
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("version", constants.AppVersion),
		slog.String("duplicate_policy", string(cfg.DuplicatePolicy)),
	)

	// ── 3. Domain Wiring ──────────────────────────────────────────────────
	service := catalogitem.NewService(catalogitem.NewMemoryStore(), cfg, log)

	// ── 4. Sample Catalog ─────────────────────────────────────────────────
	items, err := sampleCatalog(metadata.CreatedAt(time.Now().UTC()))
	must(log, err, "build sample catalog")

	added, err := service.Add(items...)
	must(log, err, "add sample catalog")

	// ── 5. Listing ────────────────────────────────────────────────────────
	page, meta, err := service.List(pagination.Params{Page: 1})
	must(log, err, "list catalog")

	for _, item := range page {
		log.Info("catalog_item",
			slog.String("catalog_item_id", item.ID().String()),
			slog.String("category", string(item.Category())),
			slog.String("scale", item.Scale().Name()),
			slog.Int("rolling_stocks", len(item.RollingStocks())),
		)
	}

	log.Info("catalog_loaded", slog.Int("added", added), slog.Int("total", meta.Total))
}

// sampleCatalog builds the same locomotive twice, as two data sources would
// report it, plus a freight car.
func sampleCatalog(meta metadata.Metadata) ([]catalogitem.CatalogItem, error) {
	acmeID, err := brand.NewID("ACME")
	if err != nil {
		return nil, err
	}
	acme, err := brand.New(acmeID, "ACME", brand.Options{}, meta)
	if err != nil {
		return nil, err
	}

	fsID, err := railway.NewID("FS")
	if err != nil {
		return nil, err
	}
	italy, err := railway.ParseCountry("IT")
	if err != nil {
		return nil, err
	}
	fs, err := railway.New(fsID, "FS", italy, railway.Options{
		RegisteredCompanyName: pointer.To("Ferrovie dello stato italiane"),
	}, meta)
	if err != nil {
		return nil, err
	}

	h0ID, err := scale.NewID("H0")
	if err != nil {
		return nil, err
	}

	epoch, err := catalogitem.ParseEpoch("IV")
	if err != nil {
		return nil, err
	}

	control := catalogitem.ControlDccReady
	loco, err := catalogitem.NewLocomotive(catalogitem.NewRollingStockID(), "E.656", "E.656 077",
		catalogitem.RailwayOf(fs), epoch, catalogitem.LocomotiveTypeElectric,
		catalogitem.LocomotiveOptions{Powered: catalogitem.Powered{Control: &control}})
	if err != nil {
		return nil, err
	}

	wagon, err := catalogitem.NewFreightCar(catalogitem.NewRollingStockID(), "Gbs",
		catalogitem.RailwayOf(fs), epoch, catalogitem.FreightCarOptions{})
	if err != nil {
		return nil, err
	}

	specs := []struct {
		number      string
		category    catalogitem.Category
		stock       catalogitem.RollingStock
		description string
	}{
		{"60000", catalogitem.CategoryLocomotives, loco, "Electric locomotive E.656"},
		{"60000", catalogitem.CategoryLocomotives, loco, "FS E.656 077, livery XMPR"},
		{"45000", catalogitem.CategoryFreightCars, wagon, "Covered freight car Gbs"},
	}

	items := make([]catalogitem.CatalogItem, 0, len(specs))
	for _, s := range specs {
		number, err := catalogitem.NewItemNumber(s.number)
		if err != nil {
			return nil, err
		}
		item, err := catalogitem.New(
			catalogitem.BrandOf(acme), number, s.category,
			[]catalogitem.RollingStock{s.stock},
			catalogitem.PowerMethodDC, catalogitem.NewScale(h0ID, "H0"), 1,
			catalogitem.Options{Description: pointer.To(s.description)},
			meta,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
