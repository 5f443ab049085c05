package service

import "errors"

// Error kinds reported by the service. Callers match them with errors.Is;
// the underlying cause stays wrapped in the chain for diagnostics.
var (
	// ErrValidation reports missing required identity fields on creation.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound reports lookups that matched no (or ambiguous) rows.
	ErrNotFound = errors.New("not found")
	// ErrPersistence reports transaction or commit failures.
	ErrPersistence = errors.New("persistence failed")
	// ErrUpload wraps any failure during the upload-then-record sequence,
	// after the compensating file delete has been attempted.
	ErrUpload = errors.New("upload failed")
	// ErrHashing reports a failure of the password hashing backend.
	ErrHashing = errors.New("password hashing failed")
)
