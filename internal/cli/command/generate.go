package command

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/akirakey/internal/cli/config"
	"github.com/yndnr/akirakey/internal/cli/output"
	"github.com/yndnr/akirakey/internal/telemetry/logger"
	"github.com/yndnr/akirakey/internal/telemetry/metric"
	"github.com/yndnr/akirakey/pkg/akirakey"
)

// recordsPrealloc caps the initial capacity of the record slice.
const recordsPrealloc = 1024

// KeyRecord is one generated key as printed by the CLI.
//
// The key is shown exactly once; only the fingerprint is meant to be stored.
type KeyRecord struct {
	ID          string    `json:"id" yaml:"id"`
	Key         string    `json:"key" yaml:"key"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// KeyRecords renders as a table.
type KeyRecords []KeyRecord

// Table implements output.Tabular.
func (r KeyRecords) Table() *output.Table {
	t := output.NewTable("ID", "KEY", "FINGERPRINT", "CREATED")
	for _, rec := range r {
		t.AddRow(rec.ID, rec.Key, rec.Fingerprint, rec.CreatedAt.Format(time.RFC3339))
	}
	return t
}

// GenerateCommand returns the generate command.
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate new keys",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of keys to generate",
			},
			&cli.Float64Flag{
				Name:  "rate",
				Usage: "Maximum keys per second (0 = unlimited)",
			},
			&cli.BoolFlag{
				Name:  "locked-memory",
				Usage: "Hold raw entropy in mlocked memory while encoding",
			},
		},
		Action: action(generateKeys),
	}
}

func generateKeys(c *cli.Context, cfg *config.CLIConfig) error {
	var opts []akirakey.Option
	if cfg.Generate.LockedMemory {
		opts = append(opts, akirakey.WithLockedMemory())
	}
	g := akirakey.New(opts...)

	limit := rate.Inf
	if cfg.Generate.Rate > 0 {
		limit = rate.Limit(cfg.Generate.Rate)
	}
	limiter := rate.NewLimiter(limit, 1)

	var progress *output.ProgressBar
	if limit != rate.Inf && cfg.Generate.Count > 1 {
		progress = output.NewProgressBar(errWriter(c), "generating", cfg.Generate.Count)
	}

	records := make(KeyRecords, 0, min(cfg.Generate.Count, recordsPrealloc))
	var genErr error
	for i := 0; i < cfg.Generate.Count; i++ {
		if err := limiter.Wait(c.Context); err != nil {
			genErr = fmt.Errorf("generation interrupted after %d keys: %w", len(records), err)
			break
		}

		key, err := g.Generate()
		metric.Global().RecordGenerate(failureReason(err), err)
		if err != nil {
			genErr = fmt.Errorf("generate key: %w", err)
			break
		}

		id := ulid.Make()
		rec := KeyRecord{
			ID:          id.String(),
			Key:         key,
			Fingerprint: akirakey.Fingerprint(key),
			CreatedAt:   ulid.Time(id.Time()).UTC(),
		}
		records = append(records, rec)
		logger.Debug("key generated", "id", rec.ID, "fingerprint", rec.Fingerprint)

		if progress != nil {
			progress.Increment(1)
		}
	}
	if progress != nil {
		progress.Finish()
	}

	logger.Info("keys generated", "count", len(records), "requested", cfg.Generate.Count)

	// Keys already generated are printed even on failure; they cannot be shown again.
	if len(records) > 0 {
		if err := render(c, cfg, records); err != nil {
			return err
		}
	}
	return genErr
}

func failureReason(err error) string {
	if akirakey.IsLockedMemoryUnavailable(err) {
		return metric.ReasonLockedMemory
	}
	return metric.ReasonEntropy
}
