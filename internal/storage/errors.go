package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAccount indicates an account tag outside the known set.
	ErrInvalidAccount = errors.New("invalid account")
	// ErrMissingCredentials indicates credentials could not be resolved from any source.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrIncompleteExplicitCredentials indicates some, but not all, explicit fields were given.
	ErrIncompleteExplicitCredentials = errors.New("incomplete explicit credentials")
	// ErrConflictingCredentials indicates an account tag was combined with explicit fields.
	ErrConflictingCredentials = errors.New("conflicting credentials")
)

// Source names where credential values were expected to come from.
type Source string

const (
	SourceEnvironment Source = "environment"
	SourceExplicit    Source = "explicit"
)

// CredentialsError is returned by Resolve when required values are absent.
// Missing holds environment variable names in named-account mode and field
// names in explicit mode.
type CredentialsError struct {
	Kind    error
	Source  Source
	Missing []string
}

func (e *CredentialsError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%v: provide an account or all of %s", e.Kind, strings.Join(explicitFieldNames, ", "))
	}
	return fmt.Sprintf("%v from %s: %s", e.Kind, e.Source, strings.Join(e.Missing, ", "))
}

func (e *CredentialsError) Unwrap() error {
	return e.Kind
}
