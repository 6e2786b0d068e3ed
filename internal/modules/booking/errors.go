package booking

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("booking not found")
	ErrNotOwner            = errors.New("booking belongs to another user")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrCreativeNotApproved = errors.New("creative not found or not approved")
	ErrCreativeUnavailable = errors.New("creative is not taking bookings")
	ErrDateOutOfWindow     = errors.New("date outside booking window")
	ErrDateUnavailable     = errors.New("date already booked")
	ErrNoActiveBooking     = errors.New("no active booking with this creative")
)
