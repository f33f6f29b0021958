// Package analyzer discovers annotated headers and extracts the classes to register.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/origadmin/reflgen/internal/model"
	"github.com/origadmin/reflgen/internal/scanner"
)

// HeaderAnalyzer walks a source directory and runs the scanner over every header.
type HeaderAnalyzer struct {
	sourceDir string
	walker    model.HeaderWalker
	scanner   *scanner.Scanner
}

// NewHeaderAnalyzer creates a new HeaderAnalyzer.
// A nil walker uses a FileWalker with the default extensions; a nil scanner
// uses the default markers in depth mode.
func NewHeaderAnalyzer(sourceDir string, walker model.HeaderWalker, sc *scanner.Scanner) *HeaderAnalyzer {
	if walker == nil {
		walker = NewFileWalker(nil)
	}
	if sc == nil {
		sc = scanner.New(nil, model.NamespaceDepth)
	}
	return &HeaderAnalyzer{
		sourceDir: sourceDir,
		walker:    walker,
		scanner:   sc,
	}
}

// Analyze is the main entry point for the analysis phase.
//
// Each header is read and masked once. Markers are then processed in rule
// order and files in walk order, so classes come out grouped by marker first.
func (a *HeaderAnalyzer) Analyze(ctx context.Context) (*model.AnalysisResult, error) {
	paths, err := a.walker.Walk(ctx, a.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to discover headers: %w", err)
	}
	slog.Debug("Discovered headers", "dir", a.sourceDir, "count", len(paths))

	sources := make([]*scanner.Source, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Skipping unreadable header", "path", path, "error", err)
			continue
		}
		sources = append(sources, a.scanner.Prepare(&model.SourceFile{Path: path, Content: string(data)}))
	}

	result := &model.AnalysisResult{}
	for _, marker := range a.scanner.Rules().ClassMarkers {
		for _, src := range sources {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			classes := a.scanner.Extract(src, marker)
			result.AddClasses(src.File.Path, classes)
		}
	}

	slog.Debug("Finished header analysis",
		"headers", len(sources),
		"classes", len(result.Classes),
		"contributing_files", len(result.Files))
	return result, nil
}
