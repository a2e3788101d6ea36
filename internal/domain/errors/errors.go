package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyClaimed     = errors.New("laundry has been claimed")
	ErrNotUpdated         = errors.New("can not be updated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
)
