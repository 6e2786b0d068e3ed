package console

import (
	"errors"

	"creativeconnect/internal/database"
	"creativeconnect/internal/modules/admin"
	"creativeconnect/internal/modules/auth"
	"creativeconnect/internal/modules/booking"
	"creativeconnect/internal/modules/catalog"
	"creativeconnect/internal/modules/chat"
	"creativeconnect/internal/modules/profile"
	"creativeconnect/internal/modules/review"
	"creativeconnect/internal/modules/support"
)

var messages = []struct {
	err error
	msg string
}{
	{database.ErrStoreUnavailable, "Cannot connect to database. Please try again later."},

	{auth.ErrInvalidEmail, "Invalid email format. Please enter a valid email."},
	{auth.ErrPasswordMismatch, "Passwords do not match."},
	{auth.ErrInvalidRole, "Role must be creative or marketer."},
	{auth.ErrEmailAlreadyExists, "An account with this email already exists."},
	{auth.ErrInvalidCredentials, "Invalid credentials."},
	{auth.ErrPendingApproval, "Your account is pending admin approval."},
	{auth.ErrSessionExpired, "Session expired. Please log in again."},
	{auth.ErrInvalidVerificationCodeFormat, "The OTP must be 6 digits."},
	{auth.ErrInvalidVerificationCode, "Invalid or expired OTP."},
	{auth.ErrTooManyAttempts, "Too many wrong OTP attempts. Please register again."},
	{auth.ErrValidation, "Please check your details: name needs 2+ characters and password 6+ characters."},

	{admin.ErrNotFound, "No pending user with that ID or already approved."},

	{catalog.ErrValidation, "Category name cannot be empty."},
	{catalog.ErrConflict, "A category with this name already exists."},
	{catalog.ErrNotFound, "No category with that ID."},

	{profile.ErrNotFound, "No profile found."},

	{booking.ErrNotFound, "Booking not found."},
	{booking.ErrNotOwner, "Booking not found or not yours."},
	{booking.ErrInvalidTransition, "This booking can no longer be changed that way."},
	{booking.ErrCreativeNotApproved, "Creative not found or not approved."},
	{booking.ErrCreativeUnavailable, "This creative is currently marked unavailable."},
	{booking.ErrDateOutOfWindow, "Selected date is outside the allowed booking window."},
	{booking.ErrDateUnavailable, "Selected date is not available."},
	{booking.ErrNoActiveBooking, "No active booking with this creative."},
	{booking.ErrValidation, "Invalid booking request."},

	{chat.ErrChatUnavailable, "Chat not available for this booking."},
	{chat.ErrNotParticipant, "You are not a participant in this booking."},
	{chat.ErrEmptyContent, "Message cannot be empty."},
	{chat.ErrTooLong, "Message is too long."},

	{review.ErrInvalidRequest, "Please enter a rating between 1 and 5."},
	{review.ErrNotFound, "Booking not found."},
	{review.ErrReviewNotAllowed, "You can review only after the booking is completed."},

	{support.ErrValidation, "Subject and description are required."},
}

// describe turns an operation error into the line shown to the user. ok is
// false for errors without a known message.
func describe(err error) (msg string, ok bool) {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return "Something went wrong. Please try again.", false
}
