// Package config holds the small set of fixed names and tokens the rest of
// the evaluator needs to agree on: reserved words, the standard-library
// import prefix, and the recognized source extension.
package config

// SourceFileExt is the canonical extension for UCG source files.
const SourceFileExt = ".ucg"

// StdlibPrefix marks an import path as resolving through the in-memory
// standard-library registry instead of the filesystem.
const StdlibPrefix = "std/"

// ReservedWords cannot be used as a `let` binding name. Collision is by
// exact textual match.
var ReservedWords = map[string]bool{
	"self":   true,
	"assert": true,
	"true":   true,
	"false":  true,
	"let":    true,
	"import": true,
	"as":     true,
	"select": true,
	"func":   true,
	"module": true,
	"env":    true,
	"map":    true,
	"filter": true,
	"NULL":   true,
	"out":    true,
	"in":     true,
	"is":     true,
	"not":    true,
}

// IsReserved reports whether name collides with a reserved word.
func IsReserved(name string) bool {
	return ReservedWords[name]
}
