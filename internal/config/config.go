package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/origadmin/reflgen/internal/analyzer"
	"github.com/origadmin/reflgen/internal/model"
	"github.com/origadmin/reflgen/internal/scanner"
)

// OutputMode selects what a generation run does with the rendered file.
type OutputMode string

const (
	// ModeWrite writes the file to disk.
	ModeWrite OutputMode = "write"
	// ModeCheck compares the rendered file with the one on disk.
	ModeCheck OutputMode = "check"
	// ModeStdout prints the rendered file.
	ModeStdout OutputMode = "stdout"
)

// Defaults reproduce the paths and markers of the engine layout.
const (
	DefaultRoot           = "."
	DefaultSourceDir      = "Engine/include"
	DefaultOutput         = "Engine/src/Generated/Reflection.gen.cpp"
	DefaultPropertyMarker = scanner.MarkerProperty
	DefaultNamespace      = "Luden"
)

// Config holds the complete configuration for a generation task.
type Config struct {
	// Root is the project root. Relative SourceDir and Output paths resolve against it.
	Root      string
	SourceDir string
	Output    string

	Markers        []string
	PropertyMarker string
	Extensions     []string

	// Namespace wraps the registration block when Features.WrapNamespace is set.
	Namespace        string
	NamespaceMode    model.NamespaceMode
	RespectGitignore bool
	Features         model.Features
	Mode             OutputMode
}

// NewDefaultConfig creates a configuration that matches the engine layout,
// with every optional feature of the registration output enabled.
func NewDefaultConfig() *Config {
	return &Config{
		Root:           DefaultRoot,
		SourceDir:      DefaultSourceDir,
		Output:         DefaultOutput,
		Markers:        slices.Clone(scanner.DefaultClassMarkers),
		PropertyMarker: DefaultPropertyMarker,
		Extensions:     slices.Clone(analyzer.DefaultExtensions),
		Namespace:      DefaultNamespace,
		NamespaceMode:  model.NamespaceDepth,
		Features: model.Features{
			EmitAccessFlags:     true,
			EmitDefaultMetadata: true,
			WrapNamespace:       true,
		},
		Mode: ModeWrite,
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.SourceDir) == "" {
		errs = append(errs, errors.New("source directory must not be empty"))
	}
	if strings.TrimSpace(c.Output) == "" && c.Mode != ModeStdout {
		errs = append(errs, errors.New("output path must not be empty"))
	}
	if len(c.Markers) == 0 {
		errs = append(errs, errors.New("at least one class marker is required"))
	}
	if strings.TrimSpace(c.PropertyMarker) == "" {
		errs = append(errs, errors.New("property marker must not be empty"))
	}
	if c.Features.WrapNamespace && strings.TrimSpace(c.Namespace) == "" {
		errs = append(errs, errors.New("namespace must not be empty when wrapping is enabled"))
	}
	switch c.NamespaceMode {
	case model.NamespaceDepth, model.NamespaceHeuristic, "":
	default:
		errs = append(errs, fmt.Errorf("unknown namespace mode %q", c.NamespaceMode))
	}
	switch c.Mode {
	case ModeWrite, ModeCheck, ModeStdout, "":
	default:
		errs = append(errs, fmt.Errorf("unknown output mode %q", c.Mode))
	}
	return errors.Join(errs...)
}

// SourcePath returns the header directory resolved against Root.
func (c *Config) SourcePath() string {
	return c.resolve(c.SourceDir)
}

// OutputPath returns the generated file path resolved against Root.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

// WrapNamespace returns the namespace to wrap the output in, or "" for none.
func (c *Config) WrapNamespace() string {
	if !c.Features.WrapNamespace {
		return ""
	}
	return c.Namespace
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.Root == "" || c.Root == "." {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root, p)
}
