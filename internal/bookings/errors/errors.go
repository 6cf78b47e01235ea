package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidRoom = errors.New("room is not in the configured room set")

	ErrRoomUnavailable = errors.New("room is not available for the selected dates")

	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
)
