package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tirasundara/sms-alert-classifier/internal/config"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/logger"
	"github.com/tirasundara/sms-alert-classifier/internal/report"
	"github.com/tirasundara/sms-alert-classifier/internal/repository"
	"github.com/tirasundara/sms-alert-classifier/internal/service"
)

func newScanCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Classify every message of an SMS export",
		Long: `Classify every message of an SMS export. Supported sources are CSV files
with address and body columns, "SMS Backup & Restore" XML files and
Android mmssms.db SQLite databases.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log, err := setup(cmd, cfg)
			if err != nil {
				return err
			}

			repo, err := newRepository(cfg, args[0])
			if err != nil {
				return err
			}
			log = logger.WithFields(log, map[string]interface{}{"command": "scan", "file": args[0]})
			ctx = logger.WithContext(ctx, log)

			msgs, err := repo.GetMessages(ctx)
			if err != nil {
				return fmt.Errorf("loading messages: %w", err)
			}

			svc := service.NewDefaultClassificationService()
			svc.NumWorkers = cfg.Workers
			svc.BatchSize = cfg.BatchSize

			results, err := svc.ClassifyAll(ctx, msgs)
			if err != nil {
				return err
			}

			summary := report.Summarize(results)
			log.Info().
				Int("total", summary.Total).
				Int("otps", summary.OTPs).
				Int("transactions", summary.Transactions).
				Int("none", summary.None).
				Msg("Scan complete")

			if cfg.Speak {
				fx, err := startEffects(ctx, cfg, log)
				if err != nil {
					return fmt.Errorf("starting speech: %w", err)
				}
				if err := fx.handle(ctx, results); err != nil {
					_ = fx.close()
					return err
				}
				if err := fx.close(); err != nil {
					return fmt.Errorf("stopping speech: %w", err)
				}
			}

			return writeReport(cmd, cfg, results)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Source, "source", "", "Source type: csv, xml or sqlite (inferred from the extension when empty)")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "Output format: json or csv")
	flags.StringVar(&cfg.Output, "output", "", "Path to output file (if empty, writes to stdout)")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of classification workers")
	flags.IntVar(&cfg.BatchSize, "batch", cfg.BatchSize, "Messages per worker batch")
	flags.StringVar(&cfg.DateFormat, "date-format", repository.DefaultDateFormat, "Layout of non numeric dates in CSV files")
	flags.BoolVar(&cfg.Speak, "speak", false, "Run the notification and speech side effects for every message")
	flags.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty print JSON output")

	return cmd
}

func newRepository(cfg *config.Config, path string) (domain.MessageRepository, error) {
	source, err := cfg.ResolveSource(path)
	if err != nil {
		return nil, err
	}

	switch source {
	case config.SourceCSV:
		return repository.NewCSVMessageRepository(path, cfg.DateFormat), nil
	case config.SourceXML:
		return repository.NewXMLBackupRepository(path), nil
	case config.SourceSQLite:
		return repository.NewSQLiteMessageRepository(path), nil
	default:
		return nil, fmt.Errorf("unsupported source: %s", source)
	}
}

func writeReport(cmd *cobra.Command, cfg *config.Config, results []domain.Result) error {
	var formatter report.OutputFormatter
	switch cfg.Format {
	case config.FormatJSON:
		formatter = report.NewJSONFormatter(cfg.Pretty)
	case config.FormatCSV:
		formatter = report.NewCSVFormatter()
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Format)
	}

	output, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if cfg.Output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	outputFile := cfg.Output
	// If no extension is provided, add the formatter's default extension
	if !strings.Contains(outputFile, ".") {
		outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
	}

	if err := os.WriteFile(outputFile, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
