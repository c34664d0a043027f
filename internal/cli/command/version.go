package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/akirakey/internal/cli/config"
	"github.com/yndnr/akirakey/internal/cli/output"
	"github.com/yndnr/akirakey/internal/infra/buildinfo"
	"github.com/yndnr/akirakey/pkg/akirakey"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: action(showVersion),
	}
}

type versionView struct {
	buildinfo.Info `yaml:",inline"`
	KeyPrefix      string `json:"key_prefix" yaml:"key_prefix"`
}

// Table implements output.Tabular.
func (v versionView) Table() *output.Table {
	t := output.NewTable("FIELD", "VALUE")
	t.AddRow("version", v.Version)
	t.AddRow("commit", v.Commit)
	t.AddRow("build_time", v.BuildTime)
	t.AddRow("go_version", v.GoVersion)
	t.AddRow("key_prefix", v.KeyPrefix)
	return t
}

func showVersion(c *cli.Context, cfg *config.CLIConfig) error {
	return render(c, cfg, versionView{Info: buildinfo.Get(), KeyPrefix: akirakey.Prefix})
}
