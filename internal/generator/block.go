package generator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/origadmin/reflgen/internal/model"
	"github.com/origadmin/reflgen/internal/template"
)

const privateAccessFlag = "registration::private_access"

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

var defaultTemplates = sync.OnceValue(func() template.Renderer {
	return template.NewManager()
})

// BlockRenderer turns one extracted class into its registration block.
type BlockRenderer struct {
	templates template.Renderer
	features  model.Features
}

// NewBlockRenderer creates a BlockRenderer. A nil renderer uses the embedded templates.
func NewBlockRenderer(templates template.Renderer, features model.Features) *BlockRenderer {
	if templates == nil {
		templates = defaultTemplates()
	}
	return &BlockRenderer{templates: templates, features: features}
}

// Render returns the registration block for cls.
func (r *BlockRenderer) Render(cls *model.ClassInfo) (string, error) {
	data := template.Block{
		QualifiedName: cls.QualifiedName,
		Name:          cls.Name,
		Constructors:  make([]string, 0, len(cls.Constructors)),
		Properties:    make([]template.BlockProperty, 0, len(cls.Properties)),
	}
	for _, ctor := range cls.Constructors {
		data.Constructors = append(data.Constructors, ctor.Signature())
	}
	for _, prop := range cls.Properties {
		data.Properties = append(data.Properties, template.BlockProperty{
			Name: prop.Name,
			Args: PropertyArgs(prop, r.features),
		})
	}

	out, err := r.templates.Render(template.BlockName, data)
	if err != nil {
		return "", fmt.Errorf("render registration for %s: %w", cls.QualifiedName, err)
	}
	return string(out), nil
}

// RenderBlock renders cls with the embedded templates.
func RenderBlock(cls *model.ClassInfo, features model.Features) (string, error) {
	return NewBlockRenderer(nil, features).Render(cls)
}

// PropertyArgs returns the arguments that follow the member pointer of a
// property registration: default metadata first, then the access flag.
func PropertyArgs(prop *model.Property, features model.Features) []string {
	var args []string
	if features.EmitDefaultMetadata && prop.HasDefault {
		args = append(args, fmt.Sprintf(`metadata("default", "%s")`, EscapeString(prop.Default)))
	}
	if features.EmitAccessFlags && prop.IsRestricted() {
		args = append(args, privateAccessFlag)
	}
	return args
}

// EscapeString escapes s for use inside a C string literal.
func EscapeString(s string) string {
	return stringEscaper.Replace(s)
}
