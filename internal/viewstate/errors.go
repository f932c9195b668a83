package viewstate

import "errors"

var (
	// ErrSaveInProgress rejects a second submit while a save is running.
	ErrSaveInProgress = errors.New("a save is already in progress")
)
