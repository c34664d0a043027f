package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/akirakey/internal/cli/config"
	"github.com/yndnr/akirakey/internal/cli/output"
	"github.com/yndnr/akirakey/internal/infra/buildinfo"
	"github.com/yndnr/akirakey/internal/telemetry/logger"
	"github.com/yndnr/akirakey/internal/telemetry/metric"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "akirakey",
		Usage:   "Generate and fingerprint AKIRA API keys",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			GenerateCommand(),
			FingerprintCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to YAML configuration file (default ~/.akirakey/config.yaml if present)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to this file after the command",
		},
	}
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"output":           "output.format",
	"log-level":        "log.level",
	"log-format":       "log.format",
	"metrics-textfile": "metrics.textfile",
	"count":            "generate.count",
	"rate":             "generate.rate",
	"locked-memory":    "generate.locked_memory",
}

// loadConfig merges explicitly set flags over file and environment
// configuration and installs the configured logger.
func loadConfig(c *cli.Context) (*config.CLIConfig, error) {
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		if !c.IsSet(name) {
			continue
		}
		switch name {
		case "count":
			overrides[key] = c.Int(name)
		case "rate":
			overrides[key] = c.Float64(name)
		case "locked-memory":
			overrides[key] = c.Bool(name)
		default:
			overrides[key] = c.String(name)
		}
	}

	cfg, err := config.Load(c.String("config"), overrides)
	if err != nil {
		return nil, err
	}

	logger.SetDefault(logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errWriter(c),
	}))
	return cfg, nil
}

// action wraps a command body with configuration loading and metric export.
func action(fn func(c *cli.Context, cfg *config.CLIConfig) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		runErr := fn(c, cfg)

		if path := cfg.Metrics.Textfile; path != "" {
			if err := metric.Global().WriteTextfile(path); err != nil {
				logger.Warn("metrics textfile not written", "path", path, "error", err)
			}
		}
		return runErr
	}
}

// render writes data to the app's stdout in the configured format.
func render(c *cli.Context, cfg *config.CLIConfig, data any) error {
	f, err := output.NewFormatter(output.Format(cfg.Output.Format))
	if err != nil {
		return err
	}
	return f.Format(writer(c), data)
}

func writer(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}
