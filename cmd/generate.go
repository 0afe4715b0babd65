package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/readmanual/internal/config"
	"github.com/ziadkadry99/readmanual/internal/manual"
	"github.com/ziadkadry99/readmanual/internal/progress"
	"github.com/ziadkadry99/readmanual/internal/walker"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	_, err = generate(cfg, newLogger(), progress.NewReporter())
	return err
}

// generate resolves the inputs, assembles the manual and writes it to
// cfg.Output. Nothing is written unless assembly succeeds.
func generate(cfg *config.Config, logger *slog.Logger, reporter progress.Reporter) (*manual.Manual, error) {
	start := time.Now()

	files, err := walker.Resolve(walker.WalkerConfig{
		Patterns: cfg.Patterns,
		Exclude:  cfg.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving inputs: %w", err)
	}
	logger.Debug("resolved inputs", "patterns", cfg.Patterns, "files", len(files))

	m, err := manual.NewAssembler(logger, reporter).Assemble(files, cfg.Name, cfg.Language)
	if err != nil {
		return nil, err
	}

	if err := writeOutput(cfg.Output, m.HTML); err != nil {
		return nil, err
	}

	logger.Info("manual written",
		"output", cfg.Output,
		"sections", len(m.Sections),
		"styles", len(m.Styles),
		"scripts", len(m.Scripts),
		"size", humanize.Bytes(uint64(len(m.HTML))),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return m, nil
}
