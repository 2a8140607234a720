package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Catalog interface {
	// Source is either "memory" or "postgres".
	Source() string
	UsePostgres() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Store interface {
	Path() string
	InMemory() bool
}
