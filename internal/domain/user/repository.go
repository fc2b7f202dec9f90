package user

import "context"

type Repository interface {
	ListUsers(ctx context.Context) ([]User, error)
}
