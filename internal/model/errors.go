package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches. For notes it also
	// covers rows owned by another user.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert violates a uniqueness constraint.
	ErrConflict = errors.New("already exists")

	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)
