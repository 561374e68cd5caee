package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminExists        = errors.New("username or email already exists")
	ErrNotFound           = errors.New("record not found")
)
