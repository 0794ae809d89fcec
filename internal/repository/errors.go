package repository

import "errors"

var (
	// ErrEmailExists is returned when a user with the same email already
	// exists, whether caught by the pre-check or by the unique index at
	// insert time.
	ErrEmailExists = errors.New("email already exists")

	ErrUserNotFound = errors.New("user not found")
	ErrTodoNotFound = errors.New("todo not found")
)
