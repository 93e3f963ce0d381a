package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested contract doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a contract name is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidAddress is returned when an address is not 0x + 40 hex chars
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidName is returned for empty or malformed contract names
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidNetwork is returned for empty network identifiers
	ErrInvalidNetwork = errors.New("invalid network")

	// ErrNoUpdates is returned when an update carries no fields
	ErrNoUpdates = errors.New("no updates specified")

	// ErrNoBroadcast is returned when no broadcast file could be located
	ErrNoBroadcast = errors.New("no broadcast file found")
)

// NameConflictError is returned when a candidate's name is already registered.
type NameConflictError struct {
	Name       string
	Network    string
	Existing   string // address of the record holding the name
	ExistingOn string // network of the record holding the name
	Suggestion string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("the name %q is already taken (points to %s on %s), try %q",
		e.Name, e.Existing, e.ExistingOn, e.Suggestion)
}

func (e *NameConflictError) Unwrap() error {
	return ErrAlreadyExists
}

// ContractNotFoundError names the contract that could not be found.
type ContractNotFoundError struct {
	Name string
}

func (e *ContractNotFoundError) Error() string {
	return fmt.Sprintf("contract %q not found", e.Name)
}

func (e *ContractNotFoundError) Unwrap() error {
	return ErrNotFound
}
