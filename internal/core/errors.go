package core

import "fmt"

// ValidationError reports missing or empty required input. It is returned
// to the caller verbatim and never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that a referenced schema is absent from the fact
// store. It is an expected outcome for read operations.
type NotFoundError struct {
	Schema string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schema '%s' not found in the fact store", e.Schema)
}

// StoreError wraps a fact-store failure. It is fatal to the current
// operation and propagates unchanged; the engine performs no retries.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("fact store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
