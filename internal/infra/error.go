package infra

import (
	"fmt"

	"barbershop-booking/internal/pkg/errs"
)

type StoreErrorKind string

const (
	KindNotFound     StoreErrorKind = "NOT_FOUND"
	KindDuplicateKey StoreErrorKind = "DUPLICATE_KEY"
	KindStoreFailure StoreErrorKind = "STORE_FAILURE"
)

// StoreError is returned by every store in this package tree. Entity and ID
// name the record involved; ID is empty for operations on a whole collection.
type StoreError struct {
	Kind   StoreErrorKind
	Entity string
	ID     string
	cause  error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Entity)
	if e.ID != "" {
		msg += " " + e.ID
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.cause
}

func NotFound(entity, id string) error {
	return &StoreError{Kind: KindNotFound, Entity: entity, ID: id}
}

func Duplicate(entity, id string) error {
	return &StoreError{Kind: KindDuplicateKey, Entity: entity, ID: id}
}

// Failure wraps an unexpected cause with the operation that hit it.
func Failure(op, entity string, cause error) error {
	return &StoreError{
		Kind:   KindStoreFailure,
		Entity: entity,
		cause:  errs.Wrapf(cause, "%s %s", op, entity),
	}
}

// IsKind looks through wraps and marks for a *StoreError of the given kind.
func IsKind(err error, kind StoreErrorKind) bool {
	var e *StoreError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
