package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"skill-match/internal/config"
	"skill-match/internal/domain/team"
	"skill-match/internal/domain/user"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis keeps the users and teams collections as Redis lists of JSON
// documents, one list per collection. List order is the iteration order.
type Redis struct {
	client *redis.Client
	prefix string
	log    *zap.SugaredLogger
}

var (
	_ user.Repository = (*Redis)(nil)
	_ team.Repository = (*Redis)(nil)
)

type userDoc struct {
	Username string   `json:"username"`
	Skills   []string `json:"skills"`
}

type teamDoc struct {
	TeamName       string   `json:"teamName"`
	SkillsRequired []string `json:"skillsRequired"`
	SlotsAvailable int      `json:"slotsAvailable"`
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, log *zap.SugaredLogger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
	}
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr(), err)
	}

	return NewRedisWithClient(client, cfg.KeyPrefix, log), nil
}

func NewRedisWithClient(client *redis.Client, prefix string, log *zap.SugaredLogger) *Redis {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "skillmatch"
	}
	return &Redis{client: client, prefix: prefix, log: log}
}

func (r *Redis) UsersKey() string { return r.prefix + ":users" }
func (r *Redis) TeamsKey() string { return r.prefix + ":teams" }

func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) ListUsers(ctx context.Context) ([]user.User, error) {
	raw, err := r.client.LRange(ctx, r.UsersKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	out := make([]user.User, 0, len(raw))
	for i, s := range raw {
		var d userDoc
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			r.log.Warnw("skipping malformed user document", "key", r.UsersKey(), "index", i, "error", err)
			continue
		}
		out = append(out, user.User{Username: d.Username, Skills: nonNil(d.Skills)})
	}
	return out, nil
}

func (r *Redis) ListTeams(ctx context.Context) ([]team.Team, error) {
	raw, err := r.client.LRange(ctx, r.TeamsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read teams: %w", err)
	}

	out := make([]team.Team, 0, len(raw))
	for i, s := range raw {
		var d teamDoc
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			r.log.Warnw("skipping malformed team document", "key", r.TeamsKey(), "index", i, "error", err)
			continue
		}
		out = append(out, team.Team{
			TeamName:       d.TeamName,
			SkillsRequired: nonNil(d.SkillsRequired),
			SlotsAvailable: d.SlotsAvailable,
		})
	}
	return out, nil
}

// ReplaceUsers swaps the users collection for the given documents atomically.
func (r *Redis) ReplaceUsers(ctx context.Context, users []user.User) error {
	docs := make([]any, 0, len(users))
	for _, u := range users {
		b, err := json.Marshal(userDoc{Username: u.Username, Skills: nonNil(u.Skills)})
		if err != nil {
			return err
		}
		docs = append(docs, b)
	}
	return r.replace(ctx, r.UsersKey(), docs)
}

// ReplaceTeams swaps the teams collection for the given documents atomically.
func (r *Redis) ReplaceTeams(ctx context.Context, teams []team.Team) error {
	docs := make([]any, 0, len(teams))
	for _, t := range teams {
		b, err := json.Marshal(teamDoc{
			TeamName:       t.TeamName,
			SkillsRequired: nonNil(t.SkillsRequired),
			SlotsAvailable: t.SlotsAvailable,
		})
		if err != nil {
			return err
		}
		docs = append(docs, b)
	}
	return r.replace(ctx, r.TeamsKey(), docs)
}

func (r *Redis) replace(ctx context.Context, key string, docs []any) error {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		if len(docs) > 0 {
			p.RPush(ctx, key, docs...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
