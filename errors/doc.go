// Package errors defines the structured error type used by the surfaces
// of this library that report failures at all: browser creation, the
// settings store, and host composition.
//
// The render core itself has no fatal states; transient unavailability
// and submission rejection degrade to silent no-ops and never produce
// one of these errors.
package errors
