package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_api/internal/adapters/observability"
)

// EnsureSchema creates the hotels table when it is absent.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx, r.d.createTable)
	observability.ObserveDB("create_table", err, time.Since(start))
	return err
}

// InitSchema is the startup form of EnsureSchema: failures are logged and the
// process keeps going, requests against a missing table then fail on their own.
func (r *Repo) InitSchema(ctx context.Context) {
	if err := r.EnsureSchema(ctx); err != nil {
		log.Error().Err(err).Str("driver", r.d.Name).Msg("database initialization failed")
		return
	}
	log.Info().Str("driver", r.d.Name).Msg("database initialized")
}

// CreateDatabase creates name on the server db is connected to, unless it
// already exists. It reports whether a database was created.
func CreateDatabase(ctx context.Context, db *sql.DB, d Dialect, name string) (bool, error) {
	if name == "" {
		return false, errors.New("database name is empty")
	}
	if d.Name != Postgres.Name {
		res, err := db.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS "+d.quoteIdent(name))
		if err != nil {
			return false, err
		}
		// 1 row affected on create, 0 when it already existed
		n, _ := res.RowsAffected()
		return n > 0, nil
	}

	var one int
	err := db.QueryRowContext(ctx, databaseExistsPostgres, name).Scan(&one)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, err
	}
	// CREATE DATABASE takes no bind parameters.
	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+d.quoteIdent(name)); err != nil {
		return false, err
	}
	return true, nil
}
