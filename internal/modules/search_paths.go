package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/funvibe/tyck/internal/config"
)

// FindProjectRoot walks startDir's ancestry upward until it finds a
// directory containing the build marker. The walk is bounded by the
// filesystem root; exhaustion is a structured error, never an
// endless loop.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", startDir, err)
	}

	for {
		marker := filepath.Join(dir, config.BuildMarkerDir)
		if info, err := os.Stat(marker); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &ProjectRootNotFoundError{StartDir: startDir}
		}
		dir = parent
	}
}

// BuildSearchPaths assembles the ordered list of package roots
// consulted when locating a module:
//
//  1. children of the standard library root
//  2. the project root itself
//  3. children of <project root>/deps
//  4. manifest extra paths, if any
//
// The order is the resolution priority.
func BuildSearchPaths(startDir string) ([]string, error) {
	projectRoot, err := FindProjectRoot(startDir)
	if err != nil {
		return nil, err
	}

	manifest, err := LoadManifest(projectRoot)
	if err != nil {
		return nil, err
	}

	libRoot := config.LibRoot()
	if manifest != nil && manifest.LibRoot != "" {
		libRoot = manifest.LibRoot
	}

	paths, err := childDirs(libRoot)
	if err != nil {
		return nil, fmt.Errorf("listing standard library root: %w", err)
	}

	paths = append(paths, projectRoot)

	depsDir := filepath.Join(projectRoot, config.DepsDir)
	depRoots, err := childDirs(depsDir)
	if err != nil {
		return nil, &DepsDirMissingError{Path: depsDir, Err: err}
	}
	paths = append(paths, depRoots...)

	if manifest != nil {
		paths = append(paths, manifest.ExtraPaths...)
	}
	return paths, nil
}

// childDirs lists the immediate child directories of dir, in name
// order.
func childDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(dir, e.Name()))
		}
	}
	return dirs, nil
}
