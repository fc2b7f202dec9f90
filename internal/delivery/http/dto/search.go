package dto

import (
	"skill-match/internal/usecase"
)

// SearchRequest is the POST /search body. UserInput is a pointer so that a
// missing field fails validation while an empty string is accepted.
type SearchRequest struct {
	UserInput *string `json:"user_input" validate:"required"`
}

type TeamResponse struct {
	TeamName       string `json:"Team Name"`
	RequiredSkills string `json:"Required Skills"`
	SlotsAvailable int    `json:"Slots Available"`
}

type UserMatchResponse struct {
	Username      string `json:"Username"`
	MatchedSkills string `json:"Matched Skills"`
	MatchCount    int    `json:"Match Count"`
}

type TeamMatchResponse struct {
	TeamName      string `json:"Team Name"`
	MatchedSkills string `json:"Matched Skills"`
	MatchCount    int    `json:"Match Count"`
}

// SearchData shapes the data array for a successful outcome. Non-success
// outcomes carry an empty array.
func SearchData(out usecase.SearchOutcome) any {
	if out.Status != usecase.StatusSuccess {
		return []any{}
	}

	switch out.Intent {
	case usecase.IntentListUsers:
		res := make([]string, 0, len(out.Users))
		for _, u := range out.Users {
			res = append(res, u.Username)
		}
		return res
	case usecase.IntentListTeams:
		res := make([]TeamResponse, 0, len(out.Teams))
		for _, t := range out.Teams {
			res = append(res, TeamResponse{
				TeamName:       t.TeamName,
				RequiredSkills: usecase.JoinSkills(t.SkillsRequired),
				SlotsAvailable: t.SlotsAvailable,
			})
		}
		return res
	case usecase.IntentMatchUsers:
		res := make([]UserMatchResponse, 0, len(out.Matches))
		for _, m := range out.Matches {
			res = append(res, UserMatchResponse{
				Username:      m.Name,
				MatchedSkills: usecase.JoinSkills(m.MatchedSkills),
				MatchCount:    m.MatchCount,
			})
		}
		return res
	case usecase.IntentMatchTeams:
		res := make([]TeamMatchResponse, 0, len(out.Matches))
		for _, m := range out.Matches {
			res = append(res, TeamMatchResponse{
				TeamName:      m.Name,
				MatchedSkills: usecase.JoinSkills(m.MatchedSkills),
				MatchCount:    m.MatchCount,
			})
		}
		return res
	default:
		return []any{}
	}
}
