// Package common defines sentinel errors and storage key constants shared by
// the wellkeeper repositories, services and CLI. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors. Saving a log without an owner is the one hard failure
	// of the store; every other missing-session path degrades to a no-op or
	// an empty read.
	ErrNoActiveSession = errors.New("no active session")

	// Validation errors raised at the model boundary.
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrPayloadMismatch = errors.New("payload does not match category")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidClock    = errors.New("invalid reminder time")
	ErrInvalidDate     = errors.New("invalid date")

	// Service-level errors.
	ErrorForbidden      = errors.New("forbidden")
	ErrNothingToExport  = errors.New("nothing to export")
	ErrUnknownDriver    = errors.New("unknown storage driver")
	ErrEmptyCredentials = errors.New("name and passphrase are required")
)
