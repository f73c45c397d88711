package commands

import (
	"petshop-booking/internal/pkg/errs"
)

var (
	// Booking pipeline
	ErrScheduleNotConfigured = errs.New("shop schedule not configured")
	ErrServiceNotFound       = errs.New("service not found")
	ErrShopClosed            = errs.New("shop closed on requested day")
	ErrOutsideOperatingHours = errs.New("requested window outside operating hours")
	ErrScheduleConflict      = errs.New("schedule conflict with existing appointment")
	ErrInsufficientCredits   = errs.New("insufficient subscription credits")
	// ErrStorageConflict: the serializable booking transaction kept losing to
	// concurrent writers. Nothing was persisted; the whole call is retryable.
	ErrStorageConflict = errs.New("storage conflict, retry the request")

	// Appointments
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrInvalidTransition   = errs.New("invalid appointment status transition")
	ErrNotAppointmentOwner = errs.New("appointment belongs to another client")

	// Clients / pets
	ErrClientNotFound   = errs.New("client not found")
	ErrPetNotFound      = errs.New("pet not found")
	ErrPetOwnership     = errs.New("pet does not belong to client")
	ErrEmailAlreadyUsed = errs.New("email already registered")

	// Subscriptions
	ErrPlanNotFound             = errs.New("subscription plan not found")
	ErrPlanInUse                = errs.New("plan is referenced by subscriptions")
	ErrSubscriptionNotFound     = errs.New("active subscription not found")
	ErrActiveSubscriptionExists = errs.New("client already has an active subscription")

	// Auth
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")

	// Generic
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrServiceInUse            = errs.New("service is referenced by other rows")
)

// InsufficientCreditsError names the first service in a booking whose credit
// balance was exhausted. errors.Is against ErrInsufficientCredits still holds.
type InsufficientCreditsError struct {
	ServiceName string
	Err         error
}

func (e *InsufficientCreditsError) Error() string {
	return "no remaining credits for service " + e.ServiceName
}

func (e *InsufficientCreditsError) Unwrap() error { return e.Err }
