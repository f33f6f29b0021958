package cmd

import (
	"fmt"

	goversion "github.com/caarlos0/go-version"

	"github.com/origadmin/reflgen/internal/config"
)

// Version prints build information.
type Version struct{}

// Run is called by Kong when the version command is executed.
func (v *Version) Run(info goversion.Info) error {
	fmt.Println(info.String())
	return nil
}

// BuildVersion assembles the version banner from values injected at link time.
func BuildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(config.Application, config.Description, config.WebSite),
		func(i *goversion.Info) {
			i.ASCIIName = config.UI
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
