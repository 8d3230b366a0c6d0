package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/subcommands"

	"github.com/maybourshan/ci-cd-stocks-service/internal/config"
	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
)

// withMigrate opens a migrate instance from the config passed to Execute,
// runs fn and closes the instance.
func withMigrate(args []interface{}, fn func(m *migrate.Migrate) error) subcommands.ExitStatus {
	if len(args) == 0 {
		logger.Get().Error("Migration error: missing configuration")
		return subcommands.ExitFailure
	}
	cfg, ok := args[0].(*config.Config)
	if !ok {
		logger.Get().Error("Migration error: missing configuration")
		return subcommands.ExitFailure
	}

	m, err := migrate.New(cfg.Database.Migrations, cfg.Database.URL())
	if err != nil {
		logger.Get().Errorf("Migration error: failed to create migrate instance: %v", err)
		return subcommands.ExitFailure
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := fn(m); err != nil {
		logger.Get().Errorf("Migration error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- upCmd ---

type upCmd struct{}

func (*upCmd) Name() string             { return "up" }
func (*upCmd) Synopsis() string         { return "apply all pending migrations" }
func (*upCmd) Usage() string            { return "up\n\n  Applies every pending migration.\n" }
func (*upCmd) SetFlags(_ *flag.FlagSet) {}

func (*upCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return withMigrate(args, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Info("Migrations applied successfully")
		return nil
	})
}

// --- downCmd ---

type downCmd struct {
	steps int
}

func (*downCmd) Name() string     { return "down" }
func (*downCmd) Synopsis() string { return "roll back migrations" }
func (*downCmd) Usage() string {
	return `down [-steps N]

  Rolls back the last N migrations (default 1).
`
}

func (c *downCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.steps, "steps", 1, "Number of migrations to roll back")
}

func (c *downCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.steps < 1 {
		logger.Get().Error("Migration error: -steps must be at least 1")
		return subcommands.ExitUsageError
	}
	return withMigrate(args, func(m *migrate.Migrate) error {
		if err := m.Steps(-c.steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back %d migration(s)", c.steps)
		return nil
	})
}

// --- versionCmd ---

type versionCmd struct{}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "print the current schema version" }
func (*versionCmd) Usage() string            { return "version\n\n  Prints the applied schema version.\n" }
func (*versionCmd) SetFlags(_ *flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return withMigrate(args, func(m *migrate.Migrate) error {
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)
		return nil
	})
}
