package modules

import (
	"os"
	"path/filepath"

	"github.com/funvibe/tyck/internal/config"
)

// Locate finds a module's source file among the search paths,
// checking <path>/src/<module>.lx in priority order and returning
// the first hit together with the owning package's include
// directory. There is no fallback: a miss across all paths is a
// ModuleNotFoundError carrying the whole list.
func Locate(searchPaths []string, module string) (srcPath, includeDir string, err error) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, "src", module+config.SourceFileExt)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, filepath.Join(path, "include"), nil
		}
	}
	return "", "", &ModuleNotFoundError{Module: module, SearchPaths: searchPaths}
}
