package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrValidationNoUserID  = errors.New("no user ID was given")

	// ErrUserNotFound is returned when the caller id is empty or unknown.
	ErrUserNotFound = errors.New("user not found")

	// ErrFilialNotFound is returned when a filial caller has no branch record.
	ErrFilialNotFound = errors.New("filial not found")

	// ErrAccessDenied is returned for callers whose role may not touch settings.
	ErrAccessDenied = errors.New("access denied")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
