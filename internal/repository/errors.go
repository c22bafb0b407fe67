package repository

import (
	"errors"
	"log"
)

// DataAccessError is the only error kind that leaves the data-access layer.
// An empty Message is the opaque internal error; a non-empty one is a
// precondition failure meant to be shown to the caller.
type DataAccessError struct {
	Message string
}

func (e *DataAccessError) Error() string {
	if e.Message == "" {
		return "internal error"
	}
	return e.Message
}

// ErrInternal is returned for every storage failure.
var ErrInternal = &DataAccessError{}

const (
	MsgUserNotFound     = "User not found!"
	MsgUserAlreadyExist = "Specified id is already exist!"
)

func NewInternalErrorWithMessage(message string) error {
	return &DataAccessError{Message: message}
}

// IsInternal reports whether err is the opaque internal error.
func IsInternal(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae) && dae.Message == ""
}

// Message returns the precondition message carried by err, if any.
func Message(err error) (string, bool) {
	var dae *DataAccessError
	if errors.As(err, &dae) && dae.Message != "" {
		return dae.Message, true
	}
	return "", false
}

// internalError logs the storage cause and hides it behind ErrInternal.
func internalError(op string, err error) error {
	log.Printf("data access: %s: %v", op, err)
	return ErrInternal
}
