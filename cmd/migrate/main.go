package main

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard-service/internal/config"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		logrus.Fatalf("migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|down|version>")
	}

	cfg := config.Load()

	m, err := migrate.New("file://db/migrations", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logrus.Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logrus.Warnf("migrate database close error: %v", dbErr)
		}
	}()

	switch os.Args[1] {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logrus.Info("migrations applied")
	case "down":
		if err := m.Steps(-1); err != nil {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logrus.Info("rolled back one migration")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to read version: %w", err)
		}
		logrus.Infof("version=%d dirty=%v", version, dirty)
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}

	return nil
}
