package user

type User struct {
	Username string
	Skills   []string
}
