//go:build !debug

// Package debug exposes the build-tag-selected debug flag.
package debug

// Debug is true when the "debug" build tag is set.
const Debug = false
