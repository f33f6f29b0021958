package generator

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/origadmin/reflgen/internal/model"
	"github.com/origadmin/reflgen/internal/template"
)

// CodeGenerator renders an analysis result into one registration source file.
type CodeGenerator struct {
	templates template.Renderer
}

// NewCodeGenerator creates a new, stateless code generator.
func NewCodeGenerator() model.CodeGenerator {
	return &CodeGenerator{templates: defaultTemplates()}
}

// Generate executes a complete code generation task.
func (g *CodeGenerator) Generate(request *model.GenerationRequest) (*model.GenerationResponse, error) {
	if request == nil || request.Result == nil {
		return nil, errors.New("generation request has no analysis result")
	}

	includeManager := NewIncludeManager(filepath.Dir(request.OutputPath))
	for _, file := range request.Result.Files {
		if _, err := includeManager.Add(file); err != nil {
			return nil, err
		}
	}

	renderer := NewBlockRenderer(g.templates, request.Features)
	blocks := make([]string, 0, len(request.Result.Classes))
	for _, cls := range request.Result.Classes {
		block, err := renderer.Render(cls)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	doc := &model.OutputDocument{
		Header:   Header,
		Includes: includeManager.GetAllIncludes(),
		Blocks:   blocks,
	}
	if request.Features.WrapNamespace {
		doc.Namespace = request.Namespace
	}

	var buf bytes.Buffer
	emitter := NewCodeEmitter(doc.Namespace)
	if err := emitter.EmitHeader(&buf, doc.Header); err != nil {
		return nil, fmt.Errorf("failed to emit header: %w", err)
	}
	if err := emitter.EmitIncludes(&buf, doc.Includes); err != nil {
		return nil, fmt.Errorf("failed to emit includes: %w", err)
	}
	if err := emitter.EmitRegistrations(&buf, doc.Blocks); err != nil {
		return nil, fmt.Errorf("failed to emit registrations: %w", err)
	}

	slog.Debug("Generated registration code",
		"classes", len(blocks),
		"includes", len(doc.Includes),
		"namespace", doc.Namespace)

	return &model.GenerationResponse{
		GeneratedCode: buf.Bytes(),
		Document:      doc,
	}, nil
}
