package team

type Team struct {
	TeamName       string
	SkillsRequired []string
	SlotsAvailable int
}
