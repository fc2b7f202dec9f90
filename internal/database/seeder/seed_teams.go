package seeder

import (
	"context"

	"skill-match/internal/domain/team"
)

type TeamsSeeder struct {
	// Teams overrides the sample set when non-nil.
	Teams []team.Team
}

func (TeamsSeeder) Name() string { return "teams" }

func (s TeamsSeeder) Run(ctx context.Context, t Target) error {
	items := s.Teams
	if items == nil {
		items = SampleTeams()
	}
	return t.SaveTeams(ctx, items)
}

func SampleTeams() []team.Team {
	return []team.Team{
		{TeamName: "Insight Lab", SkillsRequired: []string{"Python", "Data Analysis", "Machine Learning"}, SlotsAvailable: 2},
		{TeamName: "Pixel Studio", SkillsRequired: []string{"UI/UX Design", "Figma", "Prototyping"}, SlotsAvailable: 1},
		{TeamName: "Web Crew", SkillsRequired: []string{"React", "JavaScript", "CSS", "Node.js"}, SlotsAvailable: 3},
		{TeamName: "Core Services", SkillsRequired: []string{"Backend Development", "SQL", "Java"}, SlotsAvailable: 2},
		{TeamName: "Neural Works", SkillsRequired: []string{"Deep Learning", "TensorFlow", "AI", "Python"}, SlotsAvailable: 1},
	}
}
