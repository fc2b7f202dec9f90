package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/team"
	"skill-match/internal/domain/user"

	"go.uber.org/zap"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusError   Status = "error"
)

type Intent int

const (
	IntentNone Intent = iota
	IntentListUsers
	IntentListTeams
	IntentMatchUsers
	IntentMatchTeams
)

func (i Intent) String() string {
	switch i {
	case IntentListUsers:
		return "list_users"
	case IntentListTeams:
		return "list_teams"
	case IntentMatchUsers:
		return "match_users"
	case IntentMatchTeams:
		return "match_teams"
	default:
		return "none"
	}
}

const (
	MsgAllUsers            = "All users retrieved successfully."
	MsgNoUsers             = "No users found."
	MsgAllTeams            = "All teams retrieved successfully."
	MsgNoTeams             = "No teams found."
	MsgUsersMatchingPrefix = "Users matching the skills: "
	MsgNoUsersMatching     = "No users found matching the given skills."
	MsgTeamsMatchingPrefix = "Teams matching the skills: "
	MsgNoTeamsMatching     = "No teams found matching the given skills."
	MsgSpecifyTarget       = "Please specify whether you are looking for 'users' or 'teams'."
	MsgNoRelevantSkills    = "No relevant skills found in your input."
	skillSeparator         = ", "
	commandShowAllUsers    = "show all users"
	commandShowAllTeams    = "show all teams"
	keywordUser            = "user"
	keywordTeam            = "team"
)

type SkillExtractor interface {
	Extract(input string) []string
}

// SearchOutcome is the dispatcher's answer. Exactly one of Users, Teams or
// Matches is populated, selected by Intent, and only when Status is success.
type SearchOutcome struct {
	Status  Status
	Message string
	Intent  Intent
	Skills  []string

	Users   []user.User
	Teams   []team.Team
	Matches []matching.Result
}

type SearchUsecase interface {
	Search(ctx context.Context, input string) (SearchOutcome, error)
}

type Search struct {
	users     user.Repository
	teams     team.Repository
	extractor SkillExtractor
	log       *zap.SugaredLogger
}

func NewSearchUsecase(users user.Repository, teams team.Repository, extractor SkillExtractor, log *zap.SugaredLogger) *Search {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Search{users: users, teams: teams, extractor: extractor, log: log}
}

// Search routes a free-text command. The checks run in a fixed order:
// "show all users", "show all teams", then skill extraction qualified by
// "user" or "team". Errors are returned only for store failures; every
// other outcome is reported through SearchOutcome.Status.
func (u *Search) Search(ctx context.Context, input string) (SearchOutcome, error) {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, commandShowAllUsers):
		return u.listUsers(ctx)
	case strings.Contains(lower, commandShowAllTeams):
		return u.listTeams(ctx)
	}

	skills := u.extractor.Extract(input)
	if len(skills) == 0 {
		return SearchOutcome{Status: StatusError, Message: MsgNoRelevantSkills, Skills: skills}, nil
	}

	switch {
	case strings.Contains(lower, keywordUser):
		return u.matchUsers(ctx, skills)
	case strings.Contains(lower, keywordTeam):
		return u.matchTeams(ctx, skills)
	default:
		return SearchOutcome{Status: StatusError, Message: MsgSpecifyTarget, Skills: skills}, nil
	}
}

func (u *Search) listUsers(ctx context.Context) (SearchOutcome, error) {
	users, err := u.users.ListUsers(ctx)
	if err != nil {
		return SearchOutcome{}, internalErr("list users", err)
	}
	if len(users) == 0 {
		return SearchOutcome{Status: StatusFailure, Message: MsgNoUsers, Intent: IntentListUsers}, nil
	}
	return SearchOutcome{Status: StatusSuccess, Message: MsgAllUsers, Intent: IntentListUsers, Users: users}, nil
}

func (u *Search) listTeams(ctx context.Context) (SearchOutcome, error) {
	teams, err := u.teams.ListTeams(ctx)
	if err != nil {
		return SearchOutcome{}, internalErr("list teams", err)
	}
	if len(teams) == 0 {
		return SearchOutcome{Status: StatusFailure, Message: MsgNoTeams, Intent: IntentListTeams}, nil
	}
	return SearchOutcome{Status: StatusSuccess, Message: MsgAllTeams, Intent: IntentListTeams, Teams: teams}, nil
}

func (u *Search) matchUsers(ctx context.Context, skills []string) (SearchOutcome, error) {
	users, err := u.users.ListUsers(ctx)
	if err != nil {
		return SearchOutcome{}, internalErr("match users", err)
	}

	cands := make([]matching.Candidate, 0, len(users))
	for _, it := range users {
		cands = append(cands, matching.Candidate{Name: it.Username, Skills: it.Skills})
	}

	res, err := matching.Rank(skills, cands)
	if errors.Is(err, matching.ErrNoMatches) {
		u.log.Debugw("no users matched", "skills", skills, "candidates", len(cands))
		return SearchOutcome{Status: StatusFailure, Message: MsgNoUsersMatching, Intent: IntentMatchUsers, Skills: skills}, nil
	}
	if err != nil {
		return SearchOutcome{}, internalErr("rank users", err)
	}
	return SearchOutcome{
		Status:  StatusSuccess,
		Message: MsgUsersMatchingPrefix + JoinSkills(skills),
		Intent:  IntentMatchUsers,
		Skills:  skills,
		Matches: res,
	}, nil
}

func (u *Search) matchTeams(ctx context.Context, skills []string) (SearchOutcome, error) {
	teams, err := u.teams.ListTeams(ctx)
	if err != nil {
		return SearchOutcome{}, internalErr("match teams", err)
	}

	cands := make([]matching.Candidate, 0, len(teams))
	for _, it := range teams {
		cands = append(cands, matching.Candidate{Name: it.TeamName, Skills: it.SkillsRequired})
	}

	res, err := matching.Rank(skills, cands)
	if errors.Is(err, matching.ErrNoMatches) {
		u.log.Debugw("no teams matched", "skills", skills, "candidates", len(cands))
		return SearchOutcome{Status: StatusFailure, Message: MsgNoTeamsMatching, Intent: IntentMatchTeams, Skills: skills}, nil
	}
	if err != nil {
		return SearchOutcome{}, internalErr("rank teams", err)
	}
	return SearchOutcome{
		Status:  StatusSuccess,
		Message: MsgTeamsMatchingPrefix + JoinSkills(skills),
		Intent:  IntentMatchTeams,
		Skills:  skills,
		Matches: res,
	}, nil
}

// JoinSkills renders a skill list the way messages and payloads show it.
func JoinSkills(skills []string) string {
	return strings.Join(skills, skillSeparator)
}
