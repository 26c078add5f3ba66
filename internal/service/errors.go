package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned for records that do not exist or belong to another organization.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller's role or ownership does not allow the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput wraps input that failed validation.
	ErrInvalidInput = errors.New("invalid input")
)

// RejectionError is a business rule refusing an otherwise valid request.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

func reject(reason string) error {
	return &RejectionError{Reason: reason}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func forbidden(reason string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// check runs struct validation and reports the first failing field.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return invalid("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return invalid("%s failed %s", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
