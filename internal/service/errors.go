package service

import "errors"

// Service-level sentinel errors. Handlers map these onto HTTP statuses;
// data-layer sentinels (not found, conflicts) pass through unchanged.
var (
	// ErrWrongRole is returned when a user attempts an operation reserved for
	// a different role, such as an employer writing a job seeker profile.
	ErrWrongRole = errors.New("operation not allowed for this role")

	// ErrJobNotOpen is returned when applying to a posting that exists but is
	// not ACTIVE.
	ErrJobNotOpen = errors.New("job is not open for applications")

	// ErrInvalidStatus is returned when a status update names an unknown
	// application status.
	ErrInvalidStatus = errors.New("invalid application status")

	// ErrIllegalTransition is returned when a status update names a valid
	// status that the current state machine does not permit.
	ErrIllegalTransition = errors.New("illegal application status transition")

	// ErrCoverLetterTooLong is returned when a submitted cover letter exceeds
	// the configured character cap.
	ErrCoverLetterTooLong = errors.New("cover letter too long")
)
