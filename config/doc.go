// Package config provides the typed settings documents consumed by
// source updates and their persistent storage.
//
// A Settings value wraps an immutable JSON document; accessors return
// zero values for missing fields, mirroring how the host pipeline's
// settings storage behaves. The Store persists one document per source.
package config
