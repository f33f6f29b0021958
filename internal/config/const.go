// Package config implements the functions, types, and interfaces for the module.
package config

// Global constants for the application.
const (
	Application = "reflgen"
	Description = "Generate RTTR reflection registration code from annotated C++ headers"
	WebSite     = "https://github.com/origadmin/reflgen"
	UI          = "reflgen"
)

// EnvPrefix is prepended to every environment variable the CLI reads.
const EnvPrefix = "REFLGEN_"
