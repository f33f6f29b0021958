package model

import "context"

// Analyzer defines the contract for the header analysis phase.
// It scans a source tree and returns every annotated class it found.
type Analyzer interface {
	Analyze(ctx context.Context) (*AnalysisResult, error)
}

// HeaderWalker lists the header files an Analyzer should read.
type HeaderWalker interface {
	Walk(ctx context.Context, root string) ([]string, error)
}
