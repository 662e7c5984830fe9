package users

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserNameTaken = errors.New("user name already taken")
)
