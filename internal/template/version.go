package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrTemplateNotFound is returned by LoadFile when the template does not exist.
var ErrTemplateNotFound = errors.New("template file not found")

// Default locations and values of the RTTR version header.
const (
	DefaultVersionTemplate = "../extern/rttr/src/rttr/detail/base/version.h.in"
	DefaultVersionOutput   = "../extern/rttr/src/rttr/detail/base/version.h"
)

// DefaultVersionValues returns the placeholder values written into version.h.
func DefaultVersionValues() map[string]string {
	return map[string]string{
		"RTTR_VERSION_MAJOR": "0",
		"RTTR_VERSION_MINOR": "9",
		"RTTR_VERSION_PATCH": "6",
	}
}

// Text is a loaded file with @NAME@ placeholders.
type Text struct {
	Path    string
	Content string
}

// LoadFile reads a placeholder template from disk.
func LoadFile(path string) (*Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return &Text{Path: path, Content: string(data)}, nil
}

// Placeholder returns key wrapped in @ markers. Keys that already carry them are kept.
func Placeholder(key string) string {
	if len(key) >= 2 && strings.HasPrefix(key, "@") && strings.HasSuffix(key, "@") {
		return key
	}
	return "@" + key + "@"
}

// Substitute returns a copy of t with every placeholder replaced literally.
// Keys are applied in sorted order; everything else is left untouched.
func (t *Text) Substitute(values map[string]string) *Text {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	content := t.Content
	for _, k := range keys {
		content = strings.ReplaceAll(content, Placeholder(k), values[k])
	}
	return &Text{Path: t.Path, Content: content}
}

// SaveFile writes the content to path, creating parent directories.
func (t *Text) SaveFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(t.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ParseAssignments turns KEY=VALUE pairs into a value map.
func ParseAssignments(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected KEY=VALUE", pair)
		}
		values[key] = value
	}
	return values, nil
}
