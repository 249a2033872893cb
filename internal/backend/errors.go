package backend

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("record not found")
)

// NetworkError means the request never completed; nothing can be said about
// whether the backend saw it.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FetchError is a non-success status on a read path.
type FetchError struct {
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed with status %d", e.Status)
}

// MutationError is a non-success status on a write, carrying the backend's
// message when it supplied one.
type MutationError struct {
	Status  int
	Message string
}

func (e *MutationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("update failed with status %d", e.Status)
}
