// Package generator turns analysis results into RTTR registration source.
package generator

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/origadmin/reflgen/internal/model"
)

// IncludeManager collects the headers the generated file must include.
type IncludeManager struct {
	outputDir string
	includes  map[string]string
}

// NewIncludeManager creates an IncludeManager whose paths are relative to outputDir.
func NewIncludeManager(outputDir string) model.IncludeManager {
	return &IncludeManager{
		outputDir: outputDir,
		includes:  make(map[string]string),
	}
}

// Add records file and returns the include path to use for it.
// Adding the same file twice returns the same path.
func (im *IncludeManager) Add(file string) (string, error) {
	if rel, exists := im.includes[file]; exists {
		return rel, nil
	}

	dir, target := im.outputDir, file
	// filepath.Rel needs both sides absolute or both relative.
	if filepath.IsAbs(dir) != filepath.IsAbs(target) {
		var err error
		if dir, err = filepath.Abs(dir); err != nil {
			return "", err
		}
		if target, err = filepath.Abs(target); err != nil {
			return "", err
		}
	}
	rel, err := model.IncludePath(dir, target)
	if err != nil {
		return "", fmt.Errorf("include path for %s: %w", file, err)
	}
	im.includes[file] = rel
	return rel, nil
}

// GetAllIncludes returns every distinct include path, sorted.
func (im *IncludeManager) GetAllIncludes() []string {
	seen := make(map[string]struct{}, len(im.includes))
	paths := make([]string, 0, len(im.includes))
	for _, rel := range im.includes {
		if _, ok := seen[rel]; ok {
			continue
		}
		seen[rel] = struct{}{}
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	return paths
}
