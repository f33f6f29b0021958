package cmd

import (
	"context"
	"log/slog"

	"github.com/origadmin/reflgen/internal/config"
	"github.com/origadmin/reflgen/internal/generator"
	"github.com/origadmin/reflgen/internal/model"
)

// Generate scans annotated headers and writes the registration file.
type Generate struct {
	Root           string   `help:"Project root; relative paths resolve against it" default:"." env:"REFLGEN_ROOT"`
	SourceDir      string   `help:"Header directory to scan" default:"Engine/include" env:"REFLGEN_SOURCE_DIR"`
	Output         string   `help:"Generated registration file" default:"Engine/src/Generated/Reflection.gen.cpp" env:"REFLGEN_OUTPUT"`
	Marker         []string `help:"Class marker; repeat to add more, order sets output order" default:"COMPONENT(),CLASS()" env:"REFLGEN_MARKER"`
	PropertyMarker string   `help:"Property marker" default:"PROPERTY()" env:"REFLGEN_PROPERTY_MARKER"`
	Ext            []string `help:"Header file extensions" default:".h,.hpp" env:"REFLGEN_EXT"`
	Namespace      string   `help:"Namespace wrapping the registration block" default:"Luden" env:"REFLGEN_NAMESPACE"`

	WrapNamespace    bool   `help:"Wrap the registration block in the namespace" default:"true" negatable:"" env:"REFLGEN_WRAP_NAMESPACE"`
	AccessFlags      bool   `help:"Mark private and protected properties with registration::private_access" default:"true" negatable:"" env:"REFLGEN_ACCESS_FLAGS"`
	DefaultMetadata  bool   `help:"Attach default values as metadata" default:"true" negatable:"" env:"REFLGEN_DEFAULT_METADATA"`
	NamespaceMode    string `help:"How namespaces are recovered: depth tracks braces, heuristic uses the line-based stack" enum:"depth,heuristic" default:"depth" env:"REFLGEN_NAMESPACE_MODE"`
	RespectGitignore bool   `help:"Skip headers matched by the root .gitignore" env:"REFLGEN_RESPECT_GITIGNORE"`

	Check  bool `help:"Fail if the file on disk differs from what would be generated" xor:"mode"`
	Stdout bool `help:"Print the generated file instead of writing it" xor:"mode"`
}

// Config converts the flags into a generation config.
func (g *Generate) Config() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Root = g.Root
	cfg.SourceDir = g.SourceDir
	cfg.Output = g.Output
	cfg.Markers = g.Marker
	cfg.PropertyMarker = g.PropertyMarker
	cfg.Extensions = g.Ext
	cfg.Namespace = g.Namespace
	cfg.NamespaceMode = model.NamespaceMode(g.NamespaceMode)
	cfg.RespectGitignore = g.RespectGitignore
	cfg.Features = model.Features{
		EmitAccessFlags:     g.AccessFlags,
		EmitDefaultMetadata: g.DefaultMetadata,
		WrapNamespace:       g.WrapNamespace,
	}
	switch {
	case g.Check:
		cfg.Mode = config.ModeCheck
	case g.Stdout:
		cfg.Mode = config.ModeStdout
	default:
		cfg.Mode = config.ModeWrite
	}
	return cfg
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(ctx context.Context, logger *slog.Logger) error {
	cfg := g.Config()
	logger.Debug("Starting generation",
		"root", cfg.Root,
		"source_dir", cfg.SourcePath(),
		"output", cfg.OutputPath(),
		"markers", cfg.Markers,
		"mode", cfg.Mode)

	o, err := generator.NewOrchestrator(cfg)
	if err != nil {
		return err
	}
	return o.Run(ctx)
}
