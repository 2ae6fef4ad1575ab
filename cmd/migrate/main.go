// Command migrate manages the packlist database schema.
//
// Usage:
//
//	migrate [-db URL] [-dir PATH] COMMAND
//
// Commands are up, down, version, and force VERSION. The database URL falls
// back to the DATABASE_URL environment variable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/tripforge/packlist/internal/logger"
)

func main() {
	dbURL := flag.String("db", os.Getenv("DATABASE_URL"), "database URL")
	dir := flag.String("dir", "migrations", "migrations directory")
	flag.Parse()

	if *dbURL == "" {
		logger.Logger.Error("no database URL; pass -db or set DATABASE_URL")
		os.Exit(1)
	}
	if flag.NArg() < 1 {
		logger.Logger.Error("no command; expected up, down, version or force")
		os.Exit(1)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", *dir), *dbURL)
	if err != nil {
		logger.Logger.Error("failed to open migrations", "dir", *dir, "error", err)
		os.Exit(1)
	}
	defer m.Close()

	if err := run(m, flag.Args()); err != nil {
		logger.Logger.Error("migration failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Logger.Info("schema already up to date")
			return nil
		}
		if err != nil {
			return err
		}
		logger.Logger.Info("schema migrated up")
		return nil

	case "down":
		err := m.Down()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		logger.Logger.Info("schema rolled back")
		return nil

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		logger.Logger.Info("schema version", "version", version, "dirty", dirty)
		return nil

	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force needs a version argument")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad version %q: %w", args[1], err)
		}
		if err := m.Force(version); err != nil {
			return err
		}
		logger.Logger.Info("schema version forced", "version", version)
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
