package cmd

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/origadmin/reflgen/internal/template"
)

// VersionHeader renders version.h from version.h.in.
type VersionHeader struct {
	Template string   `help:"Template with @NAME@ placeholders" default:"${version_template}" env:"REFLGEN_VERSION_TEMPLATE"`
	Output   string   `help:"Rendered header" default:"${version_output}" env:"REFLGEN_VERSION_OUTPUT"`
	Set      []string `help:"Placeholder value as KEY=VALUE; repeatable, overrides the RTTR defaults" placeholder:"KEY=VALUE" sep:"none"`
}

// Run is called by Kong when the version-header command is executed.
func (v *VersionHeader) Run(logger *slog.Logger) error {
	overrides, err := template.ParseAssignments(v.Set)
	if err != nil {
		return err
	}
	values := template.DefaultVersionValues()
	maps.Copy(values, overrides)

	tpl, err := template.LoadFile(v.Template)
	if err != nil {
		return err
	}
	logger.Debug("Rendering version header", "template", v.Template, "output", v.Output, "values", values)
	if err := tpl.Substitute(values).SaveFile(v.Output); err != nil {
		return err
	}
	fmt.Printf("Generated %s successfully.\n", v.Output)
	return nil
}
