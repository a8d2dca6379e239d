// Package registry tracks every live render source in the process so
// events and process messages can be broadcast to all of them.
//
// Registration is pure bookkeeping: it never fails, and insert/remove
// are O(1) under a single mutex. Traversal always happens under that
// same mutex; the posted work itself is asynchronous and non-blocking,
// so no engine I/O runs while the lock is held.
package registry
