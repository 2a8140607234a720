package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	CatalogMemory   = "memory"
	CatalogPostgres = "postgres"
)

type catalogEnv struct {
	Source string `env:"CATALOG_SOURCE" envDefault:"memory"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Source != CatalogMemory && raw.Source != CatalogPostgres {
		return nil, fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", CatalogMemory, CatalogPostgres, raw.Source)
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) Source() string    { return cfg.raw.Source }
func (cfg *catalog) UsePostgres() bool { return cfg.raw.Source == CatalogPostgres }
