// Package template provides the templating engine for reflgen and the
// placeholder substitution used for version headers.
package template

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed *.tpl
var templates embed.FS

// Renderer is the interface for rendering templates.
type Renderer interface {
	Render(templateName string, data any) ([]byte, error)
}

// Manager is a template manager that holds and renders templates.
type Manager struct {
	tmpl *template.Template
}

// NewManager creates a new template manager and parses the embedded templates.
func NewManager() *Manager {
	tmpl := template.Must(template.ParseFS(templates, "*.tpl"))
	return &Manager{tmpl: tmpl}
}

// Render executes the named template with the given data.
func (m *Manager) Render(templateName string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BlockName is the template that renders one class registration.
const BlockName = "block"

// Block is the data passed to the block template.
type Block struct {
	QualifiedName string
	Name          string
	// Constructors holds one parameter-type signature per constructor.
	Constructors []string
	Properties   []BlockProperty
}

// BlockProperty is one property line. Args are appended after the member pointer.
type BlockProperty struct {
	Name string
	Args []string
}
