package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("user with this email already exists")
	ErrUserInactive = errors.New("user account is deactivated")
	ErrSelfAction   = errors.New("cannot perform this action on your own account")
)
