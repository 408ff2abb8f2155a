package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
	ErrDatabaseError         = errors.New("database error")
	ErrLocationRequired      = errors.New("location is required")
	ErrNoPlacesAvailable     = errors.New("no places available")
	ErrProviderNotConfigured = errors.New("business search provider not configured")
	ErrProviderUnavailable   = errors.New("business search provider unavailable")
	ErrTripNotFound          = errors.New("trip not found")
	ErrActivityNotFound      = errors.New("activity not found")
	ErrPlaceNotFound         = errors.New("saved place not found")
	ErrAccountNotFound       = errors.New("account not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrSessionExpired        = errors.New("session expired")
	ErrSummaryUnavailable    = errors.New("destination summary unavailable")
)
