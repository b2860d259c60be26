package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyService    = errors.New("service is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidVersion  = errors.New("version must be positive")
	ErrEmptyFileName   = errors.New("file name is required")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrEmptyAttachment = errors.New("attachment must belong to an entry")
)
