package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Poseidon-99/ai-resource-configurator/engine"
)

var queryFlags struct {
	file string
	kind string
}

var queryCmd = &cobra.Command{
	Use:   "query <text...>",
	Short: "Filter records with a plain-text query",
	Long: `Query interprets the text against the fixed intent patterns for the
entity kind and prints the matching records. Unrecognized queries fall
back to a substring search across all fields.

  configurator query --file tasks.csv --kind tasks "duration more than 2"
  configurator query --file clients.csv --kind clients "priority 5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryFlags.file, "file", "", "Path to the entity CSV (required)")
	f.StringVar(&queryFlags.kind, "kind", "clients", "Entity kind: clients, workers, or tasks")
	queryCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	kind, err := parseKind(queryFlags.kind)
	if err != nil {
		return err
	}
	result, err := loadFile(queryFlags.file, kind)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	intent := engine.Interpret(query, kind)
	matched := engine.Apply(intent, result.Records)

	logger.Info("query interpreted",
		zap.String("query", query),
		zap.String("intent", intent.Describe()),
		zap.Int("matched", len(matched)))

	return printJSON(struct {
		Query   string           `json:"query"`
		Intent  string           `json:"intent"`
		Matched []*engine.Record `json:"matched"`
	}{query, intent.Describe(), matched})
}
