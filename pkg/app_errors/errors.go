package apperrors

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateID          = errors.New("duplicate event id")
	ErrEmptyID              = errors.New("empty event id")
	ErrSubmissionInProgress = errors.New("submission in progress")
)
