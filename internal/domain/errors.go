package domain

import "errors"

// Sentinel errors shared by stores and services.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidSecret   = errors.New("invalid secret")
	ErrAlreadyApproved = errors.New("event already approved")
)
