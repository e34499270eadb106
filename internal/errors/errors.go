package gerr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrInvalidArgument   = status.Error(codes.InvalidArgument, "invalid argument")
	ErrAlreadyJoined     = status.Error(codes.AlreadyExists, "entrant already joined the waiting pool")
	ErrInvalidTransition = status.Error(codes.FailedPrecondition, "status transition is not allowed")
	ErrStoreFailure      = status.Error(codes.Unavailable, "waiting pool store failure")

	ErrEntryNotFound = status.Error(codes.NotFound, "waiting pool entry not found")
	ErrConflict      = status.Error(codes.Aborted, "waiting pool entry was modified concurrently")

	ErrNotificationNotFound = status.Error(codes.NotFound, "notification not found")
)

// StoreError reports a failed read or write against the waiting pool store.
// It matches ErrStoreFailure with errors.Is and unwraps to the underlying cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreFailure.Error(), e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreFailure }

// GRPCStatus lets status.Code classify wrapped store errors.
func (e *StoreError) GRPCStatus() *status.Status {
	return status.New(codes.Unavailable, e.Error())
}

// StoreFailure wraps err as a store failure unless it already carries one of the
// domain errors above, which are passed through unchanged.
func StoreFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomain(err) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// IsDomain reports whether err is one of the engine's own error kinds.
func IsDomain(err error) bool {
	for _, target := range []error{
		ErrInvalidArgument,
		ErrAlreadyJoined,
		ErrInvalidTransition,
		ErrStoreFailure,
		ErrEntryNotFound,
		ErrConflict,
		ErrNotificationNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// InvalidArgument returns ErrInvalidArgument with a detail message.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// InvalidTransition returns ErrInvalidTransition with a detail message.
func InvalidTransition(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransition, fmt.Sprintf(format, args...))
}

// ErrMailLimitReached is returned by the e-mail sender when the provider rejects
// a request because the account ran out of quota.
var ErrMailLimitReached = status.Error(codes.ResourceExhausted, "mail api limit reached")
