package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskAccessDenied   = errors.New("task access denied")
	ErrInvalidTaskInput   = errors.New("invalid task input")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
