package seeder

import (
	"context"
	"fmt"

	"skill-match/internal/database"
	"skill-match/internal/domain/team"
	"skill-match/internal/domain/user"
	"skill-match/internal/infrastructure/store"
	"skill-match/internal/repository"
)

// PostgresTarget upserts documents through the Postgres repositories inside
// one transaction per collection.
type PostgresTarget struct {
	DB database.DB
}

func (p PostgresTarget) SaveUsers(ctx context.Context, users []user.User) error {
	if err := RequireColumns(ctx, p.DB, "users", "username", "skills", "created_at"); err != nil {
		return err
	}
	return database.WithTx(ctx, p.DB, func(tx database.Tx) error {
		repo := repository.NewPostgresUserRepository(tx)
		for _, u := range users {
			if err := repo.UpsertUser(ctx, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p PostgresTarget) SaveTeams(ctx context.Context, teams []team.Team) error {
	if err := RequireColumns(ctx, p.DB, "teams", "team_name", "skills_required", "slots_available", "created_at"); err != nil {
		return err
	}
	return database.WithTx(ctx, p.DB, func(tx database.Tx) error {
		repo := repository.NewPostgresTeamRepository(tx)
		for _, t := range teams {
			if err := repo.UpsertTeam(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

// RedisTarget replaces the Redis collections wholesale.
type RedisTarget struct {
	Store *store.Redis
}

func (r RedisTarget) SaveUsers(ctx context.Context, users []user.User) error {
	if r.Store == nil {
		return fmt.Errorf("nil redis store")
	}
	return r.Store.ReplaceUsers(ctx, users)
}

func (r RedisTarget) SaveTeams(ctx context.Context, teams []team.Team) error {
	if r.Store == nil {
		return fmt.Errorf("nil redis store")
	}
	return r.Store.ReplaceTeams(ctx, teams)
}
