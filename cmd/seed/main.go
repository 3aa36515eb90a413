package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hotel_api/internal/adapters/observability"
	redisad "hotel_api/internal/adapters/redis"
	"hotel_api/internal/app"
	"hotel_api/internal/domain"
	"hotel_api/internal/shared"
	"hotel_api/internal/storage/sqlrepo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Bootstrap the hotel demo database",
		Long:          "Creates the database and the hotels table when absent, then truncates and repopulates it with the demo rows.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = shared.Load()
			log.Logger = observability.NewLogger(cfg.AppEnv)
			observability.SetLevel(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			for _, step := range []func(context.Context) error{createDatabase, createTable, seedData} {
				if err := step(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "database",
			Short: "Create the database if it does not exist",
			RunE:  func(cmd *cobra.Command, args []string) error { return createDatabase(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "table",
			Short: "Create the hotels table if it does not exist",
			RunE:  func(cmd *cobra.Command, args []string) error { return createTable(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "data",
			Short: "Truncate hotels and insert the demo rows",
			RunE:  func(cmd *cobra.Command, args []string) error { return seedData(cmd.Context()) },
		},
	)
	return root
}

var cfg shared.Config

func createDatabase(ctx context.Context) error {
	dialect, err := sqlrepo.DialectFor(cfg.DBDriver)
	if err != nil {
		return err
	}
	db, err := sqlrepo.Open(ctx, dialect, cfg.ServerDSN(), 1, 1)
	if err != nil {
		log.Error().Err(err).Msg("error creating database")
		return err
	}
	defer db.Close()

	created, err := sqlrepo.CreateDatabase(ctx, db, dialect, cfg.DBName)
	if err != nil {
		log.Error().Err(err).Msg("error creating database")
		return err
	}
	if created {
		log.Info().Str("database", cfg.DBName).Msg("database created")
	} else {
		log.Info().Str("database", cfg.DBName).Msg("database already exists")
	}
	return nil
}

func createTable(ctx context.Context) error {
	return withRepo(ctx, func(repo *sqlrepo.Repo) error {
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Error().Err(err).Msg("error creating table")
			return err
		}
		log.Info().Msg("table created")
		return nil
	})
}

func seedData(ctx context.Context) error {
	return withRepo(ctx, func(repo *sqlrepo.Repo) error {
		var cache domain.Cache
		if cfg.RedisAddr != "" {
			rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
			defer rc.Close()
			if err := rc.Ping(ctx); err == nil {
				cache = rc
			}
		}

		n, err := app.NewSeedService(repo, cache).Reseed(ctx, app.SeedHotels)
		if err != nil {
			log.Error().Err(err).Int("inserted", n).Msg("error seeding database")
			return err
		}
		log.Info().Int("rows", n).Msg("database seeded")
		return nil
	})
}

func withRepo(ctx context.Context, fn func(*sqlrepo.Repo) error) error {
	dialect, err := sqlrepo.DialectFor(cfg.DBDriver)
	if err != nil {
		return err
	}
	db, err := sqlrepo.Open(ctx, dialect, cfg.DSN(), 1, 1)
	if err != nil {
		log.Error().Err(err).Str("db", cfg.String()).Msg("database connection failed")
		return err
	}
	defer db.Close()
	return fn(sqlrepo.New(db, dialect))
}
