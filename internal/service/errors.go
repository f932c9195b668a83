package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTagsNotAttached reports a partial create: the journal record was
	// saved, but linking its tags failed. Callers still receive the saved
	// journal alongside this error.
	ErrTagsNotAttached = errors.New("entry saved but tags not attached")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
