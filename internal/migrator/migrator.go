package migrator

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedded embed.FS

type Migrator struct {
	db            *sql.DB
	migrationsDir string
	fsys          fs.FS
}

// NewMigrator runs the migrations shipped with the binary. When dir points
// at an existing directory on disk, that directory is used instead.
func NewMigrator(db *sql.DB, dir string) *Migrator {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return &Migrator{db: db, migrationsDir: ".", fsys: os.DirFS(dir)}
		}
	}
	return &Migrator{db: db, migrationsDir: "migrations", fsys: embedded}
}

func (m *Migrator) Up() error {
	goose.SetBaseFS(m.fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	if err := goose.Up(m.db, m.migrationsDir); err != nil {
		return err
	}
	return nil
}

// Migrations lists the migration files the migrator would apply.
func (m *Migrator) Migrations() ([]string, error) {
	return fs.Glob(m.fsys, path.Join(m.migrationsDir, "*.sql"))
}
