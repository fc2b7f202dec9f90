package repository

import (
	"context"
	"fmt"

	"skill-match/internal/database"
	"skill-match/internal/domain/user"
)

type PostgresUserRepository struct {
	db database.Querier
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func NewPostgresUserRepository(db database.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT username, skills
		 FROM users
		 ORDER BY created_at ASC, username ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var (
			u      user.User
			skills []string
		)
		if err := rows.Scan(&u.Username, &skills); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Skills = nonNil(skills)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

func (r *PostgresUserRepository) UpsertUser(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (username, skills) VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET skills = EXCLUDED.skills`,
		u.Username, nonNil(u.Skills),
	)
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", u.Username, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
