package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("an account with this email already exists")
	ErrCollegeNotFound  = errors.New("college not found")
	ErrCollegeExists    = errors.New("a college with this id already exists")
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")

	// ErrInvalidCredentials deliberately covers wrong password, unknown
	// email and role mismatch alike, so responses never reveal which
	// part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPermissionDenied = errors.New("permission denied")
)
