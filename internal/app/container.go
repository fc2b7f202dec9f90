package app

import (
	"context"
	"fmt"
	"time"

	"skill-match/internal/config"
	"skill-match/internal/database"
	dbpostgres "skill-match/internal/database/postgres"
	"skill-match/internal/domain/team"
	"skill-match/internal/domain/user"
	"skill-match/internal/infrastructure/store"
	"skill-match/internal/repository"

	"go.uber.org/zap"
)

// Container owns the store connection selected by STORE_DRIVER and exposes
// the users and teams collections over it.
type Container struct {
	Config config.Config
	Log    *zap.SugaredLogger

	DB    database.DB
	Redis *store.Redis

	Users user.Repository
	Teams team.Repository
}

func NewContainer(cfg config.Config, log *zap.SugaredLogger) (*Container, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Log: log}

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
		c.Users = repository.NewPostgresUserRepository(db)
		c.Teams = repository.NewPostgresTeamRepository(db)
	case config.StoreDriverRedis:
		r, err := store.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		c.Redis = r
		c.Users = r
		c.Teams = r
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	log.Infow("store connected", "driver", cfg.Store.Driver)
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	if c.Redis != nil {
		return c.Redis.Close()
	}
	return nil
}
