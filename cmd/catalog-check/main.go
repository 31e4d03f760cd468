// cmd/catalog-check/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tamzrod/catalog-check/internal/config"
	"github.com/tamzrod/catalog-check/internal/pipeline"
	"github.com/tamzrod/catalog-check/internal/reader"
	"github.com/tamzrod/catalog-check/internal/refdata"
	"github.com/tamzrod/catalog-check/internal/report"
	"github.com/tamzrod/catalog-check/internal/writer"
)

var version = "dev"

var (
	// errUsage: wrong arguments or flags. Usage goes to stdout.
	errUsage = errors.New("usage")
	// errFindings: the run completed but the catalogs are not clean.
	errFindings = errors.New("validation findings")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	cmd := newRootCommand(stdout, stderr, logger)
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return report.ExitOK
	case errors.Is(err, errUsage):
		fmt.Fprint(stdout, cmd.UsageString())
	case errors.Is(err, errFindings):
		// already printed
	default:
		logger.WithError(err).Error("catalog check aborted")
	}
	return report.ExitFailure
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

func newRootCommand(stdout, stderr io.Writer, logger *logrus.Logger) *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "catalog-check <assets.json> <sensors.json>",
		Short: "Validate and normalize sensor and asset catalogs",
		Long: `catalog-check validates a sensor catalog and an asset catalog,
then writes their canonical (trimmed, sorted) forms.

Output files are written only when both catalogs are free of findings.
Findings are printed one per line as "Sensor <id>: <message>" or
"Asset <id>: <message>".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: expected 2 arguments, got %d", errUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			level, err := logrus.ParseLevel(cfg.Log.Level)
			if err != nil {
				level = logrus.InfoLevel
			}
			logger.SetLevel(level)

			return check(cfg, pipeline.Inputs{AssetsPath: args[0], SensorsPath: args[1]}, stdout, stderr, logger)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to an optional YAML run configuration")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides the configuration file)")

	return cmd
}

// loadConfig returns defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)
	return cfg, nil
}

func check(cfg *config.Config, in pipeline.Inputs, stdout, stderr io.Writer, logger *logrus.Logger) error {
	// --------------------
	// Reference data
	// --------------------

	assetTypes, err := refdata.AssetTypes()
	if err != nil {
		return fmt.Errorf("reference data: %w", err)
	}

	// --------------------
	// Build pipeline
	// --------------------

	r, err := reader.New(reader.OSSource{})
	if err != nil {
		return err
	}
	w, err := writer.New(writer.OSSink{})
	if err != nil {
		return err
	}
	p, err := pipeline.New(pipeline.Config{
		Output:     cfg.Output,
		Units:      refdata.Units(),
		AssetTypes: assetTypes,
	}, r, w, logger)
	if err != nil {
		return err
	}

	// --------------------
	// Run + report
	// --------------------

	res, err := p.Run(in)
	if err != nil {
		return err
	}

	if err := report.PrintFindings(stdout, res.Findings()); err != nil {
		return err
	}

	summary := res.Summary()
	logger.WithFields(logrus.Fields{
		"stage":    summary.Stage,
		"findings": summary.Findings(),
		"written":  len(summary.Written),
	}).Debug("run finished")
	if err := report.PrintSummary(stderr, summary); err != nil {
		return err
	}

	if summary.ExitCode() != report.ExitOK {
		return errFindings
	}
	return nil
}
