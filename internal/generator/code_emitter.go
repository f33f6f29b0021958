package generator

import (
	"bytes"
	"fmt"

	"github.com/origadmin/reflgen/internal/model"
)

// Header opens every generated file.
const Header = "\n#include <rttr/registration>\nusing namespace rttr;\n"

// CodeEmitter writes the fixed parts of the generated file around the blocks.
type CodeEmitter struct {
	namespace string
}

// NewCodeEmitter creates a CodeEmitter. An empty namespace disables the wrapper.
func NewCodeEmitter(namespace string) model.CodeEmitter {
	return &CodeEmitter{namespace: namespace}
}

// EmitHeader writes the document header, normally Header.
func (e *CodeEmitter) EmitHeader(buf *bytes.Buffer, header string) error {
	buf.WriteString(header)
	return nil
}

// EmitIncludes writes one include line per path followed by a blank line.
func (e *CodeEmitter) EmitIncludes(buf *bytes.Buffer, includes []string) error {
	for _, inc := range includes {
		fmt.Fprintf(buf, "#include \"%s\"\n", inc)
	}
	buf.WriteString("\n")
	return nil
}

// EmitRegistrations writes the RTTR_REGISTRATION body, optionally inside the namespace.
func (e *CodeEmitter) EmitRegistrations(buf *bytes.Buffer, blocks []string) error {
	if e.namespace != "" {
		fmt.Fprintf(buf, "namespace %s\n{\n", e.namespace)
	}
	buf.WriteString("RTTR_REGISTRATION\n{\n")
	for _, block := range blocks {
		buf.WriteString(block)
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	if e.namespace != "" {
		fmt.Fprintf(buf, "} // namespace %s\n", e.namespace)
	}
	return nil
}
