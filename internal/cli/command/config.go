package command

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/akirakey/internal/cli/config"
	"github.com/yndnr/akirakey/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: action(configShow),
			},
			{
				Name:  "path",
				Usage: "Show the default configuration file path",
				Action: func(c *cli.Context) error {
					_, err := writer(c).Write([]byte(config.DefaultConfigPath() + "\n"))
					return err
				},
			},
		},
	}
}

type configView struct {
	*config.CLIConfig
}

// Table implements output.Tabular.
func (v configView) Table() *output.Table {
	t := output.NewTable("KEY", "VALUE")
	t.AddRow("log.level", v.Log.Level)
	t.AddRow("log.format", v.Log.Format)
	t.AddRow("output.format", v.Output.Format)
	t.AddRow("generate.count", formatInt(v.Generate.Count))
	t.AddRow("generate.rate", formatFloat(v.Generate.Rate))
	t.AddRow("generate.locked_memory", formatBool(v.Generate.LockedMemory))
	t.AddRow("metrics.textfile", v.Metrics.Textfile)
	return t
}

func configShow(c *cli.Context, cfg *config.CLIConfig) error {
	if cfg.Output.Format == string(output.FormatTable) {
		return render(c, cfg, configView{cfg})
	}
	return render(c, cfg, cfg)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}
