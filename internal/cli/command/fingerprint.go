package command

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/akirakey/internal/cli/config"
	"github.com/yndnr/akirakey/internal/cli/output"
	"github.com/yndnr/akirakey/internal/telemetry/logger"
	"github.com/yndnr/akirakey/pkg/akirakey"
)

// errNoKeys is returned when fingerprint receives no input.
var errNoKeys = errors.New("no keys given, pass KEY arguments or - to read stdin")

// FingerprintRecord pairs a masked key with its fingerprint.
type FingerprintRecord struct {
	Key         string `json:"key" yaml:"key"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// FingerprintRecords renders as a table.
type FingerprintRecords []FingerprintRecord

// Table implements output.Tabular.
func (r FingerprintRecords) Table() *output.Table {
	t := output.NewTable("KEY", "FINGERPRINT")
	for _, rec := range r {
		t.AddRow(rec.Key, rec.Fingerprint)
	}
	return t
}

// FingerprintCommand returns the fingerprint command.
func FingerprintCommand() *cli.Command {
	return &cli.Command{
		Name:      "fingerprint",
		Aliases:   []string{"fp"},
		Usage:     "Print the SHA-256 fingerprint of keys",
		ArgsUsage: "KEY... | -",
		Action:    action(fingerprintKeys),
	}
}

func fingerprintKeys(c *cli.Context, cfg *config.CLIConfig) error {
	keys, err := collectKeys(c)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return errNoKeys
	}

	records := make(FingerprintRecords, 0, len(keys))
	for _, key := range keys {
		records = append(records, FingerprintRecord{
			Key:         logger.RedactString(key),
			Fingerprint: akirakey.Fingerprint(key),
		})
	}
	return render(c, cfg, records)
}

// collectKeys returns the key arguments, reading one key per line from
// stdin in place of a "-" argument. Blank lines are skipped.
func collectKeys(c *cli.Context) ([]string, error) {
	var keys []string
	for _, arg := range c.Args().Slice() {
		if arg != "-" {
			keys = append(keys, arg)
			continue
		}

		lines, err := readLines(reader(c))
		if err != nil {
			return nil, err
		}
		keys = append(keys, lines...)
	}
	return keys, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func reader(c *cli.Context) io.Reader {
	if c.App.Reader != nil {
		return c.App.Reader
	}
	return os.Stdin
}
