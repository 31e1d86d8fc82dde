package service

import "errors"

var (
	ErrInvalidTitle  = errors.New("title must be between 1 and 255 characters")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
)
