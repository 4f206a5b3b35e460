package repositories

import (
	"errors"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrOwnerNotFound  = errors.New("task owner not found")

	// ErrTaskNotFound covers both a nonexistent id and a task owned by
	// another user; callers cannot tell the two apart.
	ErrTaskNotFound = errors.New("task not found")
)
