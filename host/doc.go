// Package host wires the engine loop, the instance registry, the
// engine, and optional settings persistence into one explicitly managed
// lifecycle, created at process start and torn down at exit.
//
// The host owns the goroutine that pumps the engine loop; closing the
// host destroys every live source, stops the loop, and closes the
// settings store.
package host
