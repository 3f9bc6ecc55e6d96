package services

import "errors"

// Service-level failures the handlers translate to HTTP statuses. Anything
// not listed here is a store failure and surfaces as a 500.
var (
	ErrDuplicateApplication = errors.New("user is already registered for this job")
	ErrJobClosed            = errors.New("job is no longer accepting applications")
	ErrJobNotFound          = errors.New("job not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrApplicantNotFound    = errors.New("applicant not found")
	ErrUnauthorized         = errors.New("unauthorized access")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)
