package services

import (
	"errors"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; login never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInactiveAccount is only reachable after the password has been
	// verified, so it reveals account state to no one else.
	ErrInactiveAccount = errors.New("account is inactive")
)
