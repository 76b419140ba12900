package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Poseidon-99/ai-resource-configurator/helpers"
	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

var mapCmd = &cobra.Command{
	Use:   "map <kind> <file.csv>",
	Short: "Propose canonical-field renamings for a CSV's headers",
	Long: `Map reconciles a CSV's headers against the canonical field names and
prints the proposed renamings with confidence scores. Headers scoring
0.5 or below stay unmapped and are listed separately.

  configurator map clients messy_clients.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	result, err := helpers.ParseCSV(data, kind)
	if err != nil {
		return err
	}

	return printJSON(struct {
		Kind     schema.Kind            `json:"kind"`
		Mappings []schema.ColumnMapping `json:"mappings"`
		Unmapped []string               `json:"unmapped,omitempty"`
	}{kind, result.Mappings, result.Unmapped})
}
