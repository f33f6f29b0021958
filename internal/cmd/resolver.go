package cmd

import (
	"io"

	"github.com/alecthomas/kong"
)

// configuredCommand is the only command whose flags config files may set.
const configuredCommand = "generate"

// ScopedLoader restricts a configuration loader to global flags and the
// generate command. Flat keys such as "output" would otherwise also fill
// the same-named flags of version-header and config init.
func ScopedLoader(loader kong.ConfigurationLoader) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		resolver, err := loader(r)
		if err != nil {
			return nil, err
		}
		return scopedResolver{Resolver: resolver}, nil
	}
}

type scopedResolver struct {
	kong.Resolver
}

func (s scopedResolver) Resolve(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
	if node := parent.Node(); node != nil && node.Type == kong.CommandNode && node.Name != configuredCommand {
		return nil, nil
	}
	return s.Resolver.Resolve(ctx, parent, flag)
}
