package modules

import (
	"fmt"
	"strings"
)

// ModuleNotFoundError: no search path contains the module's source
// file. Carries the full path list so callers can report where the
// resolver looked.
type ModuleNotFoundError struct {
	Module      string
	SearchPaths []string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module %s not found in any of [%s]", e.Module, strings.Join(e.SearchPaths, ", "))
}

// ProjectRootNotFoundError: the upward walk hit the filesystem root
// without finding a build marker directory.
type ProjectRootNotFoundError struct {
	StartDir string
}

func (e *ProjectRootNotFoundError) Error() string {
	return fmt.Sprintf("no project root found above %s (no directory with an ebin subdirectory)", e.StartDir)
}

// DepsDirMissingError: the dependency build directory under the
// project root does not exist or is not listable.
type DepsDirMissingError struct {
	Path string
	Err  error
}

func (e *DepsDirMissingError) Error() string {
	return fmt.Sprintf("dependency directory %s is missing or unreadable: %v", e.Path, e.Err)
}

func (e *DepsDirMissingError) Unwrap() error { return e.Err }
