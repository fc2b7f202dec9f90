package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"skill-match/internal/app"
	"skill-match/internal/config"
	"skill-match/internal/database/migration"
	"skill-match/internal/database/seeder"
	"skill-match/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "load sample users and teams after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, *seed); err != nil {
		log.Fatalw("migrate failed", "error", err)
	}
}

func run(cfg config.Config, log *zap.SugaredLogger, seed bool) error {
	c, err := app.NewContainer(cfg, log)
	if err != nil {
		return fmt.Errorf("init container: %w", err)
	}
	defer func() {
		_ = c.Close()
	}()

	var target seeder.Target
	switch {
	case c.DB != nil:
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		n, err := migration.Runner{Dir: cfg.MigrationsDir, Log: log}.Run(ctx, c.DB.SQLDB())
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		log.Infow("migrations done", "applied", n)
		target = seeder.PostgresTarget{DB: c.DB}
	case c.Redis != nil:
		log.Infow("redis store has no schema, skipping migrations")
		target = seeder.RedisTarget{Store: c.Redis}
	}

	if !seed {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return seeder.Runner{Seeders: seeder.Defaults(), Log: log}.Run(ctx, target)
}
