package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Poseidon-99/ai-resource-configurator/insight"
)

var insightFiles entityFiles

var insightCmd = &cobra.Command{
	Use:   "insight <question...>",
	Short: "Ask the reasoning service a question about the loaded data",
	Long: `Insight sends compact listings of the loaded data plus the question to
the Gemini API and prints the reply. Needs GEMINI_API_KEY or api_key in
the config file.

Service failures never surface raw: they are reported as one of four
categories (configuration, quota, rate_limit, generic) with a
user-facing message.

  configurator insight --clients clients.csv "which clients look underserved?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInsight,
}

func init() {
	f := insightCmd.Flags()
	f.StringVar(&insightFiles.clients, "clients", "", "Path to clients CSV")
	f.StringVar(&insightFiles.workers, "workers", "", "Path to workers CSV")
	f.StringVar(&insightFiles.tasks, "tasks", "", "Path to tasks CSV")
	rootCmd.AddCommand(insightCmd)
}

func runInsight(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := loadConfig(rootFlags.configPath)
	if err != nil {
		return err
	}
	if cfg.Insight.APIKey == "" {
		return fmt.Errorf("no API key: set GEMINI_API_KEY or api_key in the config file")
	}

	clients, workers, tasks, err := insightFiles.loadAll()
	if err != nil {
		return err
	}

	client := insight.NewClient(cfg.Insight, logger)
	question := strings.Join(args, " ")
	dataContext := insight.BuildDataContext(clients, workers, tasks)

	reply, err := client.Ask(cmd.Context(), question, dataContext)
	if err != nil {
		failure := insight.ClassifyFailure(err)
		logger.Warn("insight request failed",
			zap.String("category", string(failure.Category)))
		return printJSON(failure)
	}

	return printJSON(struct {
		Question string `json:"question"`
		Reply    string `json:"reply"`
	}{question, reply})
}
