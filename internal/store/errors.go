package store

import "errors"

var (
	// ErrRecordNotFound is returned by GetRecord when no record with the
	// requested id exists in the collection's local copy.
	ErrRecordNotFound = errors.New("record not found")
)
