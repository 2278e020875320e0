package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Dosada05/cricket-tournament/db"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// migrator is the part of db.Migrator the commands drive.
type migrator interface {
	Up() (bool, error)
	Down(steps int) error
	Version() (uint, bool, error)
	Close() error
}

type openFunc func(dsn string) (migrator, error)

func openMigrator(dsn string) (migrator, error) {
	return db.NewMigrator(dsn)
}

func main() {
	// Ошибку отсутствия .env не считаем фатальной.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := newApp(logger, openMigrator).Run(os.Args); err != nil {
		logger.Error("migration command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newApp(logger *slog.Logger, open openFunc) *cli.App {
	return &cli.App{
		Name:  "migrate",
		Usage: "manage the cricket tournament database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "database-url",
				Usage:    "postgres connection URL",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withMigrator(open, func(c *cli.Context, m migrator) error {
					applied, err := m.Up()
					if err != nil {
						return err
					}
					logger.Info("migrate up finished", slog.Bool("applied", applied))
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the last migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Before: func(c *cli.Context) error {
					if steps := c.Int("steps"); steps <= 0 {
						return fmt.Errorf("--steps must be positive, got %d", steps)
					}
					return nil
				},
				Action: withMigrator(open, func(c *cli.Context, m migrator) error {
					steps := c.Int("steps")
					if err := m.Down(steps); err != nil {
						return err
					}
					logger.Info("migrate down finished", slog.Int("steps", steps))
					return nil
				}),
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: withMigrator(open, func(c *cli.Context, m migrator) error {
					version, dirty, err := m.Version()
					if err != nil {
						return err
					}
					logger.Info("schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
					return nil
				}),
			},
		},
	}
}

func withMigrator(open openFunc, action func(c *cli.Context, m migrator) error) cli.ActionFunc {
	return func(c *cli.Context) (err error) {
		dsn := c.String("database-url")
		if dsn == "" {
			return errors.New("database-url must not be empty")
		}
		m, err := open(dsn)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, m.Close())
		}()
		return action(c, m)
	}
}
