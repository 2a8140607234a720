package app

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"

	"github.com/Aquilabot/KreaPC-Builder/internal/config"
	"github.com/Aquilabot/KreaPC-Builder/internal/logger"
)

var errMemoryCatalog = errors.New("migrations only apply to the postgres catalog, set CATALOG_SOURCE=postgres")

type app struct {
	di     *di
	closer *closer
}

func New(ctx context.Context) (*app, error) {
	a := &app{closer: &closer{}}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initDI,
		a.initTables,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI(a.closer)
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if !config.C().Catalog.UsePostgres() {
		return nil
	}
	if err := a.di.Migrator(ctx).Up(); err != nil {
		log.Errorw("failed to apply migrations", "error", err)
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	a.di.HTTPApp(ctx)
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer a.gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		log.Infow("🚀 KreaPC Builder listening",
			"address", config.C().Server.Address(),
			"catalog", config.C().Catalog.Source(),
		)
		return a.di.HTTPApp(egCtx).Listen(config.C().Server.Address())
	})

	eg.Go(func() error {
		<-egCtx.Done()
		return a.di.HTTPApp(egCtx).ShutdownWithTimeout(config.C().Server.ShutdownTimeout())
	})

	return eg.Wait()
}

// Migrate applies the catalog migrations and releases the connection.
func Migrate(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := logger.Init(config.C().Logger.Level(), config.C().Logger.AsJSON()); err != nil {
		return err
	}
	if !config.C().Catalog.UsePostgres() {
		return errMemoryCatalog
	}

	c := &closer{}
	defer func() { _ = c.CloseAll(context.Background()) }()

	m := NewDI(c).Migrator(ctx)
	if err := m.Up(); err != nil {
		return err
	}
	files, _ := m.Migrations()
	log.Infow("migrations applied", "files", len(files))
	return nil
}

//nolint:contextcheck
func (a *app) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(),
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	if err := a.closer.CloseAll(ctx); err != nil {
		log.Errorw("❌ Error during server shutdown", "error", err)
		return
	}
	log.Info("✅ Server stopped")
}
