package domain

import "errors"

// Error strings double as response details on the wire, hence the casing.
var (
	ErrEventNotFound      = errors.New("Event not found")
	ErrEventAlreadyExists = errors.New("Event already exists")
	ErrNoFieldsToUpdate   = errors.New("No fields to update")
)
