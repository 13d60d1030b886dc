package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

var ErrEmailTaken = errEmailTaken{}

type errEmailTaken struct{}

func (errEmailTaken) Error() string { return "email already registered" }

type Repo interface {
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
}
