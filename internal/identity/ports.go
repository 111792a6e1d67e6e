package identity

import (
	"context"

	"tokenrelay/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Subject(token, use string) (string, error)
}

//counterfeiter:generate -o fake -fake-name UserStore . UserStore
type UserStore interface {
	GetUser(ctx context.Context, userID string) (repository.User, error)
}
