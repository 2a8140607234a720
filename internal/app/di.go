package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/Aquilabot/KreaPC-Builder/internal/config"
	"github.com/Aquilabot/KreaPC-Builder/internal/migrator"
	"github.com/Aquilabot/KreaPC-Builder/internal/models"
	repository "github.com/Aquilabot/KreaPC-Builder/internal/repository/part"
	"github.com/Aquilabot/KreaPC-Builder/internal/selection"
	"github.com/Aquilabot/KreaPC-Builder/internal/service"
	thttp "github.com/Aquilabot/KreaPC-Builder/internal/transport/http"
)

type retailerSource interface {
	Retailers() []models.Retailer
}

type di struct {
	closer *closer

	dbPool     *pgxpool.Pool
	sqlDB      *sql.DB
	migrator   *migrator.Migrator
	repository service.PartRepository

	store  selection.Store
	builds *selection.Builds

	partService  thttp.PartService
	buildService thttp.BuildService

	httpApp *fiber.App
}

func NewDI(c *closer) *di { return &di{closer: c} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		d.closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.sqlDB = stdlib.OpenDBFromPool(d.DBPool(ctx))
		d.migrator = migrator.NewMigrator(d.sqlDB, config.C().Postgres.MigrationDirectory())

		d.closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.sqlDB.Close()
			})
	}

	return d.migrator
}

// PartRepository serves the catalog from Postgres or from the mock data
// embedded in the binary, depending on CATALOG_SOURCE.
func (d *di) PartRepository(ctx context.Context) service.PartRepository {
	if d.repository == nil {
		if config.C().Catalog.UsePostgres() {
			d.repository = repository.NewPartRepository(d.DBPool(ctx))
		} else {
			repo, err := repository.NewMockRepository()
			if err != nil {
				panic(fmt.Sprintf("failed to load mock catalog: %v\n", err))
			}
			d.repository = repo
		}
	}

	return d.repository
}

func (d *di) Store(_ context.Context) selection.Store {
	if d.store == nil {
		cfg := config.C().Store

		bs, err := selection.OpenBadger(selection.BadgerConfig{
			Path:     cfg.Path(),
			InMemory: cfg.InMemory(),
		})
		if err != nil {
			panic(fmt.Sprintf("failed to open build store: %v\n", err))
		}

		d.closer.AddNamed("Badger",
			func(ctx context.Context) error {
				return bs.Close()
			})

		d.store = bs
	}

	return d.store
}

func (d *di) Builds(ctx context.Context) *selection.Builds {
	if d.builds == nil {
		d.builds = selection.NewBuilds(d.Store(ctx))
	}

	return d.builds
}

func (d *di) PartService(ctx context.Context) thttp.PartService {
	if d.partService == nil {
		d.partService = service.NewPartService(
			d.PartRepository(ctx),
			config.C().Server.DBTimeout(),
		)
	}

	return d.partService
}

func (d *di) BuildService(ctx context.Context) thttp.BuildService {
	if d.buildService == nil {
		d.buildService = service.NewBuildService(
			d.Builds(ctx),
			d.PartRepository(ctx),
			config.C().Server.DBTimeout(),
		)
	}

	return d.buildService
}

func (d *di) HTTPApp(ctx context.Context) *fiber.App {
	if d.httpApp == nil {
		var retailers []models.Retailer
		if src, ok := d.PartRepository(ctx).(retailerSource); ok {
			retailers = src.Retailers()
		}

		d.httpApp = thttp.NewApp(thttp.Config{
			Parts:       d.PartService(ctx),
			Builds:      d.BuildService(ctx),
			Retailers:   retailers,
			ReadTimeout: config.C().Server.ReadTimeout(),
		})
	}

	return d.httpApp
}
