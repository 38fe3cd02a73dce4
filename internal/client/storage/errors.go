package storage

import "errors"

// Common client storage errors
var (
	// ErrBikeNotFound indicates that bike was not found in local cache
	ErrBikeNotFound = errors.New("bike not found")

	// ErrUserNotFound indicates that user was not found in local cache
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that another user is already stored with the same email
	ErrEmailTaken = errors.New("email already belongs to another user")

	// ErrPlanNotFound indicates that pricing plan was not found in local cache
	ErrPlanNotFound = errors.New("pricing plan not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
