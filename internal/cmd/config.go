package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/origadmin/reflgen/internal/config"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file holding every default.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
	Output string `help:"Destination file path (defaults to reflgen.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run generates a configuration template from the command structs and their tags.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	dest := c.Output
	if dest == "" {
		dest = config.FileName(format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}

	data, err := Scaffold(format)
	if err != nil {
		return err
	}
	if err := config.EnsureDir(dest); err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", dest)
	return nil
}

// Scaffold renders the default configuration in the given format, shaped the
// way the matching kong resolver looks keys up.
//
// JSON keys are flat flag names with '_' for '-'. TOML keys are flat flag
// names, since kong-toml rejects any key that is not a flag name once its
// tables are flattened. YAML nests the generate flags under "generate".
func Scaffold(format string) ([]byte, error) {
	switch normalizeFormat(format) {
	case "json":
		return json.MarshalIndent(flatScaffold("_"), "", "  ")
	case "yaml":
		root := buildMapFromStruct(reflect.TypeOf(LogOptions{}), "log-", "-")
		root["generate"] = buildMapFromStruct(reflect.TypeOf(Generate{}), "", "-")
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(flatScaffold("-"))
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

func flatScaffold(sep string) map[string]any {
	root := buildMapFromStruct(reflect.TypeOf(LogOptions{}), "log-", sep)
	maps.Copy(root, buildMapFromStruct(reflect.TypeOf(Generate{}), "", sep))
	return root
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// flagName mirrors kong's default flag naming: CamelCase becomes kebab-case.
func flagName(f reflect.StructField) string {
	if name := f.Tag.Get("name"); name != "" {
		return name
	}
	var sb strings.Builder
	runes := []rune(f.Name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func buildMapFromStruct(t reflect.Type, prefix, sep string) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		// Mode switches are per invocation, not configuration.
		if _, ok := f.Tag.Lookup("xor"); ok {
			continue
		}

		key := strings.ReplaceAll(prefix+flagName(f), "-", sep)
		val := defaultValueForField(f.Type, f.Tag.Get("default"))
		if val != nil {
			out[key] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		if def == "" {
			return false
		}
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if def == "" {
			return 0
		}
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Slice:
		if t.Elem().Kind() != reflect.String {
			return nil
		}
		values := []string{}
		if def != "" {
			values = strings.Split(def, ",")
		}
		return values
	default:
		return nil
	}
}
