package store

import (
	"context"
	"net"
	"testing"

	"skill-match/internal/config"
	"skill-match/internal/domain/team"
	"skill-match/internal/domain/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisWithClient(client, "test", nil), mr
}

func TestRedis_UsersRoundTripKeepsOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	in := []user.User{
		{Username: "alice", Skills: []string{"Python", "Java"}},
		{Username: "bob"},
	}
	require.NoError(t, s.ReplaceUsers(ctx, in))

	got, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, []user.User{
		{Username: "alice", Skills: []string{"Python", "Java"}},
		{Username: "bob", Skills: []string{}},
	}, got)

	require.NoError(t, s.ReplaceUsers(ctx, in[:1]))
	got, err = s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestRedis_TeamsDocumentShape(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceTeams(ctx, []team.Team{{TeamName: "Web", SkillsRequired: []string{"React"}, SlotsAvailable: 3}}))

	raw, err := mr.List("test:teams")
	require.NoError(t, err)
	require.JSONEq(t, `{"teamName":"Web","skillsRequired":["React"],"slotsAvailable":3}`, raw[0])

	got, err := s.ListTeams(ctx)
	require.NoError(t, err)
	require.Equal(t, []team.Team{{TeamName: "Web", SkillsRequired: []string{"React"}, SlotsAvailable: 3}}, got)
}

func TestRedis_SkipsMalformedDocuments(t *testing.T) {
	s, mr := newTestStore(t)

	_, err := mr.RPush("test:users", "{not json", `{"username":"carol","skills":["SQL"]}`)
	require.NoError(t, err)

	got, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, []user.User{{Username: "carol", Skills: []string{"SQL"}}}, got)
}

func TestRedis_EmptyCollections(t *testing.T) {
	s, _ := newTestStore(t)

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)

	teams, err := s.ListTeams(context.Background())
	require.NoError(t, err)
	require.Empty(t, teams)
}

func TestNewRedis_UnreachableFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	host, port := splitAddr(addr)
	_, err := NewRedis(context.Background(), config.RedisConfig{Host: host, Port: port}, nil)
	require.Error(t, err)
}

func TestNewRedis_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := splitAddr(mr.Addr())

	s, err := NewRedis(context.Background(), config.RedisConfig{Host: host, Port: port, KeyPrefix: "app"}, nil)
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, "app:users", s.UsersKey())
	require.NoError(t, s.Ping(context.Background()))
}

func splitAddr(addr string) (string, string) {
	host, port, _ := net.SplitHostPort(addr)
	return host, port
}
