package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/biasharaledger/docextract/constants"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConfig         = errors.New("configuration error")
	ErrInternal       = errors.New("internal error")
	ErrDatabase       = errors.New("database error")
	ErrTenantMismatch = errors.New("tenant isolation violated")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// StatusFromErrorKind maps a terminal document error kind to the gRPC status
// the API layer should surface. Raw internal errors never cross this
// boundary, only the typed kind does.
func StatusFromErrorKind(kind constants.ErrorKind) error {
	switch kind {
	case constants.ErrKindTimeout:
		return status.Error(codes.DeadlineExceeded, "extraction timed out")
	case constants.ErrKindPersistence:
		return status.Error(codes.Unavailable, "persistence unavailable")
	case constants.ErrKindTenantMismatch:
		return status.Error(codes.FailedPrecondition, "tenant isolation violated")
	default:
		return status.Error(codes.Internal, "extraction failed")
	}
}
