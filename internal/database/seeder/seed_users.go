package seeder

import (
	"context"

	"skill-match/internal/domain/user"
)

type UsersSeeder struct {
	// Users overrides the sample set when non-nil.
	Users []user.User
}

func (UsersSeeder) Name() string { return "users" }

func (s UsersSeeder) Run(ctx context.Context, t Target) error {
	items := s.Users
	if items == nil {
		items = SampleUsers()
	}
	return t.SaveUsers(ctx, items)
}

func SampleUsers() []user.User {
	return []user.User{
		{Username: "alice", Skills: []string{"Python", "Machine Learning", "Data Analysis", "SQL"}},
		{Username: "bob", Skills: []string{"JavaScript", "React", "CSS", "HTML", "Frontend Development"}},
		{Username: "charlie", Skills: []string{"Node.js", "Express", "MongoDB", "Backend Development"}},
		{Username: "diana", Skills: []string{"Figma", "Adobe XD", "UI/UX Design", "Prototyping"}},
		{Username: "eve", Skills: []string{"Python", "Deep Learning", "TensorFlow", "AI"}},
		{Username: "frank", Skills: []string{"Java", "C++", "SQL"}},
		{Username: "grace", Skills: []string{"Python", "Django", "Flask", "Backend Development"}},
	}
}
