package matching

import (
	"errors"
	"sort"
)

// ErrNoMatches is returned by Rank when no candidate shares a skill with the
// query. It is distinct from a nil error with an empty slice.
var ErrNoMatches = errors.New("no matches")

type Candidate struct {
	Name   string
	Skills []string
}

type Result struct {
	Name          string
	MatchedSkills []string
	MatchCount    int
}

// Rank intersects skills with every candidate, drops candidates without
// overlap and orders the rest by MatchCount descending. Ties keep candidate
// order. MatchedSkills follow the order of skills.
func Rank(skills []string, candidates []Candidate) ([]Result, error) {
	if len(skills) == 0 || len(candidates) == 0 {
		return nil, ErrNoMatches
	}

	out := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		matched := Intersect(skills, c.Skills)
		if len(matched) == 0 {
			continue
		}
		out = append(out, Result{Name: c.Name, MatchedSkills: matched, MatchCount: len(matched)})
	}

	if len(out) == 0 {
		return nil, ErrNoMatches
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchCount > out[j].MatchCount
	})
	return out, nil
}

// Intersect returns the distinct members of query that also appear in have,
// in query order.
func Intersect(query, have []string) []string {
	if len(query) == 0 || len(have) == 0 {
		return []string{}
	}

	set := make(map[string]struct{}, len(have))
	for _, s := range have {
		set[s] = struct{}{}
	}

	out := make([]string, 0, len(query))
	seen := make(map[string]struct{}, len(query))
	for _, s := range query {
		if _, ok := set[s]; !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
