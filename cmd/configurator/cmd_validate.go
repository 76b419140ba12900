package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Poseidon-99/ai-resource-configurator/engine"
	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

var validateFiles entityFiles

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate entity CSVs against the canonical rule sets",
	Long: `Validate runs the full per-entity checklist (required fields, numeric
types, soft ranges, duplicate identifiers, cross-references) and prints
one report per loaded file.

When both clients and tasks are loaded, client RequestedTaskIDs are
checked against the loaded task identifiers.

  configurator validate --clients clients.csv --workers workers.csv --tasks tasks.csv`,
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateFiles.clients, "clients", "", "Path to clients CSV")
	f.StringVar(&validateFiles.workers, "workers", "", "Path to workers CSV")
	f.StringVar(&validateFiles.tasks, "tasks", "", "Path to tasks CSV")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	defer logger.Sync()

	clients, workers, tasks, err := validateFiles.loadAll()
	if err != nil {
		return err
	}

	reports := make(map[string]engine.Report)

	if validateFiles.clients != "" {
		var opts []engine.Option
		if len(tasks) > 0 {
			opts = append(opts, engine.WithAllowedValues(
				schema.RequestedTaskIDs, identifierValues(tasks, schema.TaskID)))
		}
		report := engine.ValidateClients(clients, opts...)
		logger.Info("validated clients",
			zap.Int("rows", report.Summary.RowCount),
			zap.Int("errors", report.Summary.ErrorCount),
			zap.Int("warnings", report.Summary.WarningCount))
		reports["clients"] = report
	}

	if validateFiles.workers != "" {
		report := engine.ValidateWorkers(workers)
		logger.Info("validated workers",
			zap.Int("rows", report.Summary.RowCount),
			zap.Int("errors", report.Summary.ErrorCount),
			zap.Int("warnings", report.Summary.WarningCount))
		reports["workers"] = report
	}

	if validateFiles.tasks != "" {
		report := engine.ValidateTasks(tasks)
		logger.Info("validated tasks",
			zap.Int("rows", report.Summary.RowCount),
			zap.Int("errors", report.Summary.ErrorCount),
			zap.Int("warnings", report.Summary.WarningCount))
		reports["tasks"] = report
	}

	return printJSON(reports)
}
