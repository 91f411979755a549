package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error with a code and message.
// Two DomainErrors match under errors.Is when their codes are equal, so wrapped
// or enriched errors still compare against the sentinels below.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return de.Code == e.Code
}

// Error codes
const (
	ErrCodeUnauthenticated          = "UNAUTHENTICATED"
	ErrCodeMisconfigured            = "MISCONFIGURED"
	ErrCodeUserNotFound             = "USER_NOT_FOUND"
	ErrCodeUnresolvableSubscription = "UNRESOLVABLE_SUBSCRIPTION"
	ErrCodeQuotaExceeded            = "QUOTA_EXCEEDED"
	ErrCodeDurationExceeded         = "DURATION_EXCEEDED"
	ErrCodeStepsExceeded            = "STEPS_EXCEEDED"
	ErrCodeAPIAccessDenied          = "API_ACCESS_DENIED"
	ErrCodeStoreUnavailable         = "STORE_UNAVAILABLE"
	ErrCodePlanUnavailable          = "PLAN_UNAVAILABLE"
	ErrCodeNoCustomer               = "NO_CUSTOMER"
)

// Sentinels for errors.Is checks.
var (
	ErrUnauthenticated          = &DomainError{Code: ErrCodeUnauthenticated, Message: "Authentication required"}
	ErrMisconfigured            = &DomainError{Code: ErrCodeMisconfigured, Message: "Webhook secret is not configured"}
	ErrUserNotFound             = &DomainError{Code: ErrCodeUserNotFound, Message: "No user matches the billing event"}
	ErrUnresolvableSubscription = &DomainError{Code: ErrCodeUnresolvableSubscription, Message: "Subscription event could not be matched to a user"}
	ErrQuotaExceeded            = &DomainError{Code: ErrCodeQuotaExceeded, Message: "Daily generation limit reached"}
	ErrDurationExceeded         = &DomainError{Code: ErrCodeDurationExceeded, Message: "Requested duration exceeds plan maximum"}
	ErrStepsExceeded            = &DomainError{Code: ErrCodeStepsExceeded, Message: "Requested steps exceed plan maximum"}
	ErrAPIAccessDenied          = &DomainError{Code: ErrCodeAPIAccessDenied, Message: "Plan does not include API access"}
	ErrStoreUnavailable         = &DomainError{Code: ErrCodeStoreUnavailable, Message: "Persistent store unavailable"}
	ErrPlanUnavailable          = &DomainError{Code: ErrCodePlanUnavailable, Message: "Plan is not available for purchase"}
	ErrNoCustomer               = &DomainError{Code: ErrCodeNoCustomer, Message: "User has no billing customer"}
)

// StoreUnavailable wraps a store failure. Nil stays nil.
func StoreUnavailable(err error) error {
	if err == nil {
		return nil
	}
	return &DomainError{
		Code:    ErrCodeStoreUnavailable,
		Message: ErrStoreUnavailable.Message,
		Err:     err,
	}
}

// Wrap attaches a cause to a sentinel while keeping its code and message.
func Wrap(sentinel *DomainError, err error) error {
	return &DomainError{Code: sentinel.Code, Message: sentinel.Message, Err: err}
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
