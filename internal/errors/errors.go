package errors

import "errors"

var (
	ErrMissingName         = errors.New("parsed name is empty")
	ErrInvalidScore        = errors.New("parsed score is out of range")
	ErrScoreCountMismatch  = errors.New("incorrect score count")
	ErrEmptyStore          = errors.New("record store is empty")
	ErrStoreNotInitialized = errors.New("record store is not initialized")
	ErrEmptyFile           = errors.New("file is empty")
)
