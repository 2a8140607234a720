package envconfig

import "github.com/caarlos0/env/v11"

type storeEnv struct {
	Path     string `env:"BUILD_STORE_PATH" envDefault:"data/builds"`
	InMemory bool   `env:"BUILD_STORE_IN_MEMORY" envDefault:"false"`
}

type store struct {
	raw storeEnv
}

func NewStoreConfig() (*store, error) {
	var raw storeEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &store{raw: raw}, nil
}

func (cfg *store) Path() string   { return cfg.raw.Path }
func (cfg *store) InMemory() bool { return cfg.raw.InMemory }
