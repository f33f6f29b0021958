package model

import (
	"bytes"
)

// Features toggles the optional parts of the generated registration code.
type Features struct {
	EmitAccessFlags     bool
	EmitDefaultMetadata bool
	WrapNamespace       bool
}

// OutputDocument is everything that ends up in the generated source file.
type OutputDocument struct {
	Header    string
	Includes  []string
	Namespace string
	Blocks    []string
}

// GenerationRequest is one rendering job. Namespace is empty when the
// output is not wrapped.
type GenerationRequest struct {
	Result     *AnalysisResult
	OutputPath string
	Namespace  string
	Features   Features
}

// GenerationResponse holds the rendered file and the document it came from.
type GenerationResponse struct {
	GeneratedCode []byte
	Document      *OutputDocument
}

// CodeGenerator renders an analysis result.
type CodeGenerator interface {
	Generate(request *GenerationRequest) (*GenerationResponse, error)
}

// IncludeManager turns contributing headers into include paths.
type IncludeManager interface {
	Add(file string) (string, error)
	GetAllIncludes() []string
}

// CodeEmitter writes the fixed sections of the generated file.
type CodeEmitter interface {
	EmitHeader(buf *bytes.Buffer, header string) error
	EmitIncludes(buf *bytes.Buffer, includes []string) error
	EmitRegistrations(buf *bytes.Buffer, blocks []string) error
}
