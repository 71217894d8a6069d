package service

import "errors"

// Taxonomía de errores de los servicios. Los handlers los traducen a
// status HTTP con errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream unavailable")
)
