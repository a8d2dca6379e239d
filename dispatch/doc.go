// Package dispatch owns the engine loop: the single goroutine permitted to
// touch Browser objects, and the submission primitives that move work onto
// it from arbitrary pipeline goroutines.
//
// Browser handles are never dereferenced outside tasks executed by the
// loop. RunSync re-checks the handle at execution time; RunAsync captures
// it at submission time and becomes a no-op when no handle exists. Both
// treat a missing handle as an expected state, never an error.
package dispatch
