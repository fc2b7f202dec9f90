package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"skill-match/internal/app"
	"skill-match/internal/config"
	"skill-match/internal/database"
	"skill-match/internal/database/migration"
	dbpostgres "skill-match/internal/database/postgres"
	"skill-match/internal/database/seeder"
	"skill-match/internal/domain/team"
	"skill-match/internal/domain/user"
	"skill-match/internal/repository"
	"skill-match/internal/search"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type matchRow struct {
	Username      string `json:"Username"`
	TeamName      string `json:"Team Name"`
	MatchedSkills string `json:"Matched Skills"`
	MatchCount    int    `json:"Match Count"`
}

func TestIntegration_Search_Postgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	suffix := uuid.NewString()[:8]
	users := []user.User{
		{Username: "it-ana-" + suffix, Skills: []string{"Flask", "Django", "SQL"}},
		{Username: "it-ben-" + suffix, Skills: []string{"Flask"}},
	}
	teams := []team.Team{
		{TeamName: "it-team-" + suffix, SkillsRequired: []string{"Flask", "Django"}, SlotsAvailable: 4},
	}
	target := seeder.PostgresTarget{DB: db}
	err := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.UsersSeeder{Users: users},
		seeder.TeamsSeeder{Teams: teams},
	}}.Run(ctx, target)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	defer cleanup(t, db, users, teams)

	srv := newTestFiberApp(db)

	res := postSearch(t, srv, "show all users")
	if res.Status != "success" {
		t.Fatalf("show all users: status=%s message=%s", res.Status, res.Message)
	}
	var names []string
	if err := json.Unmarshal(res.Data, &names); err != nil {
		t.Fatalf("decode usernames: %v", err)
	}
	for _, u := range users {
		if !contains(names, u.Username) {
			t.Fatalf("show all users: %s missing from %v", u.Username, names)
		}
	}

	res = postSearch(t, srv, "users who know Flask and Django")
	if res.Status != "success" {
		t.Fatalf("user match: status=%s message=%s", res.Status, res.Message)
	}
	rows := decodeRows(t, res.Data)
	ana, ben := indexOf(rows, users[0].Username), indexOf(rows, users[1].Username)
	if ana < 0 || ben < 0 {
		t.Fatalf("user match: seeded users missing: %+v", rows)
	}
	if rows[ana].MatchCount != 2 || rows[ana].MatchedSkills != "Flask, Django" {
		t.Fatalf("user match: unexpected row %+v", rows[ana])
	}
	if rows[ben].MatchCount != 1 || ana > ben {
		t.Fatalf("user match: expected ana ranked above ben: %+v", rows)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].MatchCount > rows[i-1].MatchCount {
			t.Fatalf("user match: not sorted by count: %+v", rows)
		}
	}

	res = postSearch(t, srv, "a team for Django")
	if res.Status != "success" {
		t.Fatalf("team match: status=%s message=%s", res.Status, res.Message)
	}
	found := false
	for _, r := range decodeRows(t, res.Data) {
		if r.TeamName == teams[0].TeamName {
			found = r.MatchCount == 1 && r.MatchedSkills == "Django"
		}
	}
	if !found {
		t.Fatalf("team match: seeded team missing or wrong: %s", string(res.Data))
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	usr := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("SKILLMATCH_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || usr == "" {
		t.Skip("missing test DB env vars: set SKILLMATCH_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     usr,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	if _, err := (migration.Runner{Dir: resolveMigrationsDir(t)}).Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	// module root is two levels up from this file
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(root, "migrations")

	files, _ := filepath.Glob(filepath.Join(migDir, "V*__*.sql"))
	if len(files) == 0 {
		t.Fatalf("resolve migrations dir: no migration files found in %s", migDir)
	}
	return migDir
}

func cleanup(t *testing.T, db database.DB, users []user.User, teams []team.Team) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, u := range users {
		_, _ = db.Exec(ctx, `DELETE FROM users WHERE username = $1`, u.Username)
	}
	for _, tm := range teams {
		_, _ = db.Exec(ctx, `DELETE FROM teams WHERE team_name = $1`, tm.TeamName)
	}
}

func newTestFiberApp(db database.DB) *fiber.App {
	cfg := config.Config{App: config.AppConfig{AppName: "skill-match-it", RequestTimeout: 10 * time.Second}}
	uc := usecase.NewSearchUsecase(
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresTeamRepository(db),
		search.NewDefaultSkillExtractor(),
		nil,
	)
	return app.New(cfg, uc, nil).Fiber
}

func postSearch(t *testing.T, srv *fiber.App, input string) envelope {
	t.Helper()

	b, _ := json.Marshal(map[string]string{"user_input": input})
	req := httptest.NewRequest("POST", "/search", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Test(req, fiber.TestConfig{Timeout: 15 * time.Second, FailOnTimeout: true})
	if err != nil {
		t.Fatalf("search %q: %v", input, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("search %q: http status %d", input, resp.StatusCode)
	}
	var out envelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("search %q: decode: %v", input, err)
	}
	return out
}

func decodeRows(t *testing.T, raw json.RawMessage) []matchRow {
	t.Helper()
	var rows []matchRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	return rows
}

func indexOf(rows []matchRow, username string) int {
	for i, r := range rows {
		if r.Username == username {
			return i
		}
	}
	return -1
}

func contains(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}

func stringsOrDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return strings.TrimSpace(def)
}
