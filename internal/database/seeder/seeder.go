package seeder

import (
	"context"

	"skill-match/internal/domain/team"
	"skill-match/internal/domain/user"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, t Target) error
}

// Target is the store a seeder writes documents into.
type Target interface {
	SaveUsers(ctx context.Context, users []user.User) error
	SaveTeams(ctx context.Context, teams []team.Team) error
}
