// Package cmd holds the kong command tree of reflgen.
package cmd

import (
	"github.com/alecthomas/kong"

	"github.com/origadmin/reflgen/internal/template"
)

// CLI is the root of the command line.
type CLI struct {
	ConfigFile string     `name:"config" help:"Config file (.json, .yaml, .yml or .toml)" placeholder:"FILE" env:"REFLGEN_CONFIG"`
	Log        LogOptions `embed:"" prefix:"log-"`

	Generate      Generate      `cmd:"" default:"withargs" help:"Generate the RTTR registration file (default command)"`
	VersionHeader VersionHeader `cmd:"" name:"version-header" help:"Render the RTTR version header from its template"`
	Config        ConfigCommand `cmd:"" help:"Manage configuration files"`
	Version       Version       `cmd:"" help:"Print version information"`
}

// LogOptions configures the process logger.
type LogOptions struct {
	Level  string `help:"Log level" enum:"debug,info,warn,error" default:"warn" env:"REFLGEN_LOG_LEVEL"`
	Format string `help:"Log format; auto picks text on a terminal and json otherwise" enum:"auto,text,json" default:"auto" env:"REFLGEN_LOG_FORMAT"`
	File   string `help:"Also write logs to this file" env:"REFLGEN_LOG_FILE"`
}

// Vars supplies the ${name} defaults interpolated into the command tags.
func Vars() kong.Vars {
	return kong.Vars{
		"version_template": template.DefaultVersionTemplate,
		"version_output":   template.DefaultVersionOutput,
	}
}
