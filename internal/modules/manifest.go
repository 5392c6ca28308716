package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/tyck/internal/config"
)

// Manifest is the optional per-project tyck.yaml configuration,
// looked up in the project root.
type Manifest struct {
	// LibRoot overrides the standard library root for this project.
	LibRoot string `yaml:"lib_root,omitempty"`

	// ExtraPaths are additional package roots appended after the
	// dependency roots, lowest priority. Relative paths are resolved
	// against the project root.
	ExtraPaths []string `yaml:"extra_paths,omitempty"`
}

// LoadManifest reads the project manifest. A missing manifest is not
// an error; a malformed one is.
func LoadManifest(projectRoot string) (*Manifest, error) {
	path := filepath.Join(projectRoot, config.ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, p := range m.ExtraPaths {
		if !filepath.IsAbs(p) {
			m.ExtraPaths[i] = filepath.Join(projectRoot, p)
		}
	}
	return &m, nil
}
