package usecase

import (
	"errors"
	"fmt"
)

var ErrInternal = errors.New("internal error")

func internalErr(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, cause)
}
