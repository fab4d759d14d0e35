package domain

import "errors"

var (
	ErrMonasteryNotFound = errors.New("monastery not found")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrUserNotFound      = errors.New("user not found")
)

var (
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNotYourBooking         = errors.New("not your booking")
	ErrNotYourMonastery       = errors.New("not your monastery's booking")
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrSlotUnavailable  = errors.New("slot is not accepting bookings")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
