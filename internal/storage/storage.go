package storage

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/vendo-server/internal/config"
	"github.com/carson-networks/vendo-server/internal/storage/transaction"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Storage struct {
	DB           *sql.DB
	Transactions transaction.ITransactionTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("sqlite", env.SQLiteDSN)
	if err != nil {
		return nil, err
	}

	// With the default :memory: DSN every pooled connection would get its
	// own empty database; a single connection keeps one store.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return &Storage{
		DB:           db,
		Transactions: transaction.NewTable(db),
	}, nil
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
