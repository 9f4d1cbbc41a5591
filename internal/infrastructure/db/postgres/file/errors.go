package file

import "errors"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrNotOwner     = errors.New("file is owned by another user")
)
