package service

import "errors"

// The closed set of failure kinds every service error wraps. Handlers map
// these onto HTTP statuses instead of matching message strings.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream failure")
)
