package seeder

import (
	"context"
	"errors"
	"testing"

	"skill-match/internal/domain/skill"
	"skill-match/internal/domain/team"
	"skill-match/internal/domain/user"
	"skill-match/internal/infrastructure/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type memTarget struct {
	users   []user.User
	teams   []team.Team
	failErr error
}

func (m *memTarget) SaveUsers(_ context.Context, users []user.User) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.users = append(m.users, users...)
	return nil
}

func (m *memTarget) SaveTeams(_ context.Context, teams []team.Team) error {
	m.teams = append(m.teams, teams...)
	return nil
}

func TestRunner_Defaults(t *testing.T) {
	target := &memTarget{}
	require.NoError(t, Runner{Seeders: Defaults()}.Run(context.Background(), target))
	require.Equal(t, SampleUsers(), target.users)
	require.Equal(t, SampleTeams(), target.teams)
}

func TestRunner_WrapsSeederName(t *testing.T) {
	boom := errors.New("boom")
	err := Runner{Seeders: []Seeder{nil, UsersSeeder{}}}.Run(context.Background(), &memTarget{failErr: boom})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "seed users")

	require.Error(t, Runner{}.Run(context.Background(), nil))
}

func TestSampleData_UsesKnownSkills(t *testing.T) {
	for _, u := range SampleUsers() {
		for _, s := range u.Skills {
			require.True(t, skill.IsKnown(s), "user %s: %s", u.Username, s)
		}
	}
	for _, tm := range SampleTeams() {
		require.Positive(t, tm.SlotsAvailable)
		for _, s := range tm.SkillsRequired {
			require.True(t, skill.IsKnown(s), "team %s: %s", tm.TeamName, s)
		}
	}
}

func TestRedisTarget_ReplacesCollections(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	s := store.NewRedisWithClient(client, "seed", nil)
	ctx := context.Background()

	target := RedisTarget{Store: s}
	require.NoError(t, Runner{Seeders: Defaults()}.Run(ctx, target))
	// a second run must not duplicate documents
	require.NoError(t, Runner{Seeders: Defaults()}.Run(ctx, target))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, len(SampleUsers()))

	teams, err := s.ListTeams(ctx)
	require.NoError(t, err)
	require.Equal(t, SampleTeams(), teams)

	require.Error(t, RedisTarget{}.SaveUsers(ctx, nil))
}
