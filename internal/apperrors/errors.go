package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// It is reserved for explicit id lookups; the silent currency/locale
// fallback paths never produce it.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotLoaded indicates that a backing table failed to load, or has not
// been loaded yet. Callers decide whether to retry or fail the request.
var ErrNotLoaded = errors.New("data not loaded")
