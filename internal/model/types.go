package model

import (
	"path/filepath"
	"strings"
)

// DeclKind is the keyword a reflected type was declared with.
type DeclKind int

// Constants for the supported declaration keywords.
const (
	Class DeclKind = iota
	Struct
)

func (k DeclKind) String() string {
	if k == Struct {
		return "struct"
	}
	return "class"
}

// ParseDeclKind maps a declaration keyword to its DeclKind.
func ParseDeclKind(s string) DeclKind {
	if s == "struct" {
		return Struct
	}
	return Class
}

// NamespaceMode selects how namespace scope is recovered from header text.
type NamespaceMode string

const (
	// NamespaceDepth tracks every brace on comment- and string-masked text.
	NamespaceDepth NamespaceMode = "depth"
	// NamespaceHeuristic pops the namespace stack on any line containing '}'.
	NamespaceHeuristic NamespaceMode = "heuristic"
)

// SourceFile is a header read from disk. It is not modified after it is read.
type SourceFile struct {
	Path    string
	Content string
}

// Span is a half-open byte range [Start, End) into a SourceFile's content.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// ClassInfo describes one annotated type declaration and what was extracted from its body.
type ClassInfo struct {
	Name          string
	QualifiedName string
	Namespace     string
	Kind          DeclKind
	Marker        string
	Line          int
	Body          Span
	File          *SourceFile

	Constructors []Constructor
	Properties   []*Property
}

// BodyText returns the slice of the declaring file covered by the class body.
func (c *ClassInfo) BodyText() string {
	if c == nil || c.File == nil {
		return ""
	}
	return c.File.Content[c.Body.Start:c.Body.End]
}

// QualifyName joins a namespace path and a type name with "::".
// An empty namespace yields the bare name.
func QualifyName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "::" + name
}

// Property is an annotated field found inside a class body.
type Property struct {
	Type       string
	Name       string
	Default    string
	HasDefault bool
	Access     AccessLevel
	// Line is the zero-based line within the class body.
	Line int
}

// IsRestricted reports whether the property is not publicly accessible.
func (p *Property) IsRestricted() bool {
	return p.Access != Public
}

// Constructor is the parameter-type signature of one constructor.
// An empty ParamTypes is the default constructor.
type Constructor struct {
	ParamTypes []string
}

// Signature returns the parameter types joined with ", ".
func (c Constructor) Signature() string {
	return strings.Join(c.ParamTypes, ", ")
}

// AnalysisResult holds all the information gathered during the analysis phase.
type AnalysisResult struct {
	// Classes in discovery order: marker order first, then sorted file order, then file position.
	Classes []*ClassInfo
	// Files is every header that contributed at least one class, in discovery order, without duplicates.
	Files []string
}

// AddClasses appends classes found in file and records the file as a contributor.
func (r *AnalysisResult) AddClasses(file string, classes []*ClassInfo) {
	if len(classes) == 0 {
		return
	}
	r.Classes = append(r.Classes, classes...)
	for _, f := range r.Files {
		if f == file {
			return
		}
	}
	r.Files = append(r.Files, file)
}

// Empty reports whether nothing registrable was found.
func (r *AnalysisResult) Empty() bool {
	return r == nil || len(r.Classes) == 0
}

// IncludePath expresses file relative to dir with forward slashes.
func IncludePath(dir, file string) (string, error) {
	rel, err := filepath.Rel(dir, file)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
