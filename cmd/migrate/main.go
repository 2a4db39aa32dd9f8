// Command migrate applies the SQL migrations against the configured
// database.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/config"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/logger"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/migration"
)

func main() {
	configFile := flag.String("config", "", "path to config.toml")
	path := flag.String("path", "migrations", "path to migration files")
	steps := flag.Int("steps", 0, "apply exactly n migrations (negative rolls back)")
	force := flag.Int("force", -1, "force a specific version and clear the dirty flag")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	m, err := migration.NewFromURL(cfg.Database.URL(), *path, log)
	if err != nil {
		log.Fatal("failed to initialize migrator", zap.Error(err))
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Error("error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		err = m.Steps(*steps)
	case "force":
		err = m.Force(*force)
	case "version":
		var v uint
		var dirty bool
		v, dirty, err = m.Version()
		if err == nil {
			log.Info("migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))
		}
	default:
		log.Fatal("unknown command", zap.String("command", command))
	}

	if err != nil {
		log.Fatal("migration failed", zap.String("command", command), zap.Error(err))
	}
	log.Info("migration complete", zap.String("command", command))
}
