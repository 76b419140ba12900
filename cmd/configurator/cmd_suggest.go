package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Poseidon-99/ai-resource-configurator/engine"
	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

var suggestFiles entityFiles

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest allocation rules and data-quality fixes",
	Long: `Suggest scans the loaded data for allocation-rule opportunities
(priority skew, slot pressure, group spread, uncovered skills) and for
per-file data-quality findings with fix confidence scores.

  configurator suggest --clients clients.csv --workers workers.csv --tasks tasks.csv`,
	RunE: runSuggest,
}

var suggestRuleCmd = &cobra.Command{
	Use:   "rule <text...>",
	Short: "Turn a plain-text request into a rule draft",
	Long: `Rule maps a plain-text request onto one of the fixed rule templates:
priority-first, load-balance, skill-match, group-allocation, or
manual-review when nothing matches.

  configurator suggest rule "spread the load across teams"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggestRule,
}

func init() {
	f := suggestCmd.Flags()
	f.StringVar(&suggestFiles.clients, "clients", "", "Path to clients CSV")
	f.StringVar(&suggestFiles.workers, "workers", "", "Path to workers CSV")
	f.StringVar(&suggestFiles.tasks, "tasks", "", "Path to tasks CSV")
	suggestCmd.AddCommand(suggestRuleCmd)
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	defer logger.Sync()

	clients, workers, tasks, err := suggestFiles.loadAll()
	if err != nil {
		return err
	}

	rules := engine.SuggestRules(clients, workers, tasks)

	quality := make(map[string][]engine.QualityFinding)
	if suggestFiles.clients != "" {
		quality["clients"] = engine.SuggestDataQuality(clients, schema.Clients)
	}
	if suggestFiles.workers != "" {
		quality["workers"] = engine.SuggestDataQuality(workers, schema.Workers)
	}
	if suggestFiles.tasks != "" {
		quality["tasks"] = engine.SuggestDataQuality(tasks, schema.Tasks)
	}

	logger.Info("suggestions computed",
		zap.Int("rules", len(rules)),
		zap.Int("entitySets", len(quality)))

	return printJSON(struct {
		Rules   []string                           `json:"rules"`
		Quality map[string][]engine.QualityFinding `json:"quality"`
	}{rules, quality})
}

func runSuggestRule(cmd *cobra.Command, args []string) error {
	draft := engine.NaturalLanguageToRule(strings.Join(args, " "))
	return printJSON(draft)
}
