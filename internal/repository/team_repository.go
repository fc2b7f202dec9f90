package repository

import (
	"context"
	"fmt"

	"skill-match/internal/database"
	"skill-match/internal/domain/team"
)

type PostgresTeamRepository struct {
	db database.Querier
}

var _ team.Repository = (*PostgresTeamRepository)(nil)

func NewPostgresTeamRepository(db database.Querier) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

func (r *PostgresTeamRepository) ListTeams(ctx context.Context) ([]team.Team, error) {
	rows, err := r.db.Query(ctx,
		`SELECT team_name, skills_required, slots_available
		 FROM teams
		 ORDER BY created_at ASC, team_name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	out := make([]team.Team, 0)
	for rows.Next() {
		var (
			t      team.Team
			skills []string
		)
		if err := rows.Scan(&t.TeamName, &skills, &t.SlotsAvailable); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		t.SkillsRequired = nonNil(skills)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return out, nil
}

func (r *PostgresTeamRepository) UpsertTeam(ctx context.Context, t team.Team) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO teams (team_name, skills_required, slots_available) VALUES ($1, $2, $3)
		 ON CONFLICT (team_name) DO UPDATE
		 SET skills_required = EXCLUDED.skills_required, slots_available = EXCLUDED.slots_available`,
		t.TeamName, nonNil(t.SkillsRequired), t.SlotsAvailable,
	)
	if err != nil {
		return fmt.Errorf("upsert team %s: %w", t.TeamName, err)
	}
	return nil
}
