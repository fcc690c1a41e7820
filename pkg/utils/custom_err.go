package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmptyPoints        = errors.New("points array is required and cannot be empty")
	ErrNoValidPoints      = errors.New("no valid points with coordinates found")
	ErrMissingTripDetails = errors.New("trip details (location, numberOfDays, budget) are required")
	ErrLandmarkNotFound   = errors.New("landmark not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrDatabaseError      = errors.New("database error")
)
