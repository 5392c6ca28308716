package config

import "os"

const SourceFileExt = ".lx"

// HeaderFileExt is the extension of include headers resolved
// against a package's include directory.
const HeaderFileExt = ".lxh"

// CoreModuleName is the module that owns all built-in functions.
// Built-ins are always looked up fully qualified (core:length/1).
const CoreModuleName = "core"

// BuildMarkerDir marks a project root during the upward search:
// the first ancestor of the start directory containing it wins.
const BuildMarkerDir = "ebin"

// DepsDir is the subdirectory of the project root whose children
// are the build roots of fetched dependencies.
const DepsDir = "deps"

// ManifestFile is the optional per-project configuration file,
// looked up in the project root.
const ManifestFile = "tyck.yaml"

// DefaultLibRoot is where the runtime's standard library packages
// live; every immediate child is a library package root.
const DefaultLibRoot = "/usr/lib/lx/lib"

const libRootEnv = "TYCK_LIB_ROOT"

// LibRoot returns the standard library root, honoring the
// TYCK_LIB_ROOT override.
func LibRoot() string {
	if v := os.Getenv(libRootEnv); v != "" {
		return v
	}
	return DefaultLibRoot
}
