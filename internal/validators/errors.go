package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEntry         = errors.New("entry must have text or at least one image")
	ErrInvalidMood        = errors.New("invalid mood type")
	ErrInvalidJournalID   = errors.New("invalid journal ID")
	ErrInvalidTagID       = errors.New("invalid tag ID")
	ErrEmptyTagName       = errors.New("tag name is required")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
