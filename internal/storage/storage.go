package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashflow-engine/internal/config"
)

// Storage implements the service layer's data sources on top of postgres.
// All reads join in the currency and category rows the engine needs, and a
// reference to a missing currency or account surfaces as an error instead of
// a silent default.
type Storage struct {
	DB   *sql.DB
	exec bob.Executor
}

func NewStorage(env *config.Config) (*Storage, error) {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB:   db,
		exec: bob.NewDB(db),
	}, nil
}
