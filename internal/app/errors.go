package app

import "errors"

// One sentinel per error class; concrete failures wrap them with
// fmt.Errorf("%w: ...") and the HTTP layer matches with errors.Is.
var (
	ErrValidation        = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrForbidden         = errors.New("admin access required")
)
