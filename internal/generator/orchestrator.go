package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/origadmin/reflgen/internal/analyzer"
	"github.com/origadmin/reflgen/internal/config"
	"github.com/origadmin/reflgen/internal/model"
	"github.com/origadmin/reflgen/internal/scanner"
)

// ErrStale is returned in check mode when the file on disk differs from the generated one.
var ErrStale = errors.New("generated file is out of date")

// Orchestrator runs one generation: analysis, rendering and output.
type Orchestrator struct {
	config    *config.Config
	analyzer  model.Analyzer
	generator model.CodeGenerator
	stdout    io.Writer
}

// NewOrchestrator wires the analyzer and generator for cfg.
func NewOrchestrator(cfg *config.Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	rules, err := scanner.NewRules(cfg.Markers, cfg.PropertyMarker)
	if err != nil {
		return nil, fmt.Errorf("invalid markers: %w", err)
	}

	walker := analyzer.NewFileWalker(cfg.Extensions)
	if cfg.RespectGitignore {
		walker = walker.WithGitignore(cfg.Root)
	}
	return &Orchestrator{
		config:    cfg,
		analyzer:  analyzer.NewHeaderAnalyzer(cfg.SourcePath(), walker, scanner.New(rules, cfg.NamespaceMode)),
		generator: NewCodeGenerator(),
		stdout:    os.Stdout,
	}, nil
}

// SetOutput redirects user-facing messages and stdout mode output.
func (o *Orchestrator) SetOutput(w io.Writer) {
	o.stdout = w
}

// Run analyzes the source tree and writes, checks or prints the result.
// Finding nothing to register is not an error; no file is touched in that case.
func (o *Orchestrator) Run(ctx context.Context) error {
	result, err := o.analyzer.Analyze(ctx)
	if err != nil {
		return err
	}
	if result.Empty() {
		slog.Info("No annotated classes found", "dir", o.config.SourcePath(), "markers", o.config.Markers)
		fmt.Fprintf(o.stdout, "No matching %s classes found.\n", strings.Join(o.config.Markers, " or "))
		return nil
	}

	outputPath := o.config.OutputPath()
	resp, err := o.generator.Generate(&model.GenerationRequest{
		Result:     result,
		OutputPath: outputPath,
		Namespace:  o.config.WrapNamespace(),
		Features:   o.config.Features,
	})
	if err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}

	switch o.config.Mode {
	case config.ModeStdout:
		_, err := o.stdout.Write(resp.GeneratedCode)
		return err
	case config.ModeCheck:
		return o.check(outputPath, resp.GeneratedCode)
	default:
		return o.write(outputPath, resp.GeneratedCode)
	}
}

func (o *Orchestrator) write(path string, code []byte) error {
	if err := config.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, code, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	slog.Debug("Wrote registration file", "file", path, "bytes", len(code))
	fmt.Fprintf(o.stdout, "Generated %s\n", filepath.ToSlash(path))
	return nil
}

func (o *Orchestrator) check(path string, code []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist", ErrStale, path)
		}
		return fmt.Errorf("failed to read output file: %w", err)
	}
	if bytes.Equal(existing, code) {
		fmt.Fprintf(o.stdout, "Up to date %s\n", filepath.ToSlash(path))
		return nil
	}
	return fmt.Errorf("%w: %s\n%s", ErrStale, path, LineDiff(string(existing), string(code)))
}

// LineDiff renders the changed lines between two texts, prefixed with - and +.
func LineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
