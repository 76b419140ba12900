package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Poseidon-99/ai-resource-configurator/engine"
	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

// ============================================================================
// CSV LOADER — Raw bytes → []engine.Record
// ============================================================================
// The caller reads the CSV from wherever it lives (file, upload, sheet
// export). This helper reconciles the headers through the column mapper
// and binds each row to canonical field names. Headers the mapper cannot
// place keep their original name, so no column is silently dropped.
// ============================================================================

// LoadResult is the outcome of parsing one CSV for an entity kind.
type LoadResult struct {
	Records  []*engine.Record
	Mappings []schema.ColumnMapping
	// Unmapped lists headers the mapper could not reconcile; their values
	// are kept under the original header name.
	Unmapped []string
}

// ParseCSV parses CSV bytes into records for one entity kind.
func ParseCSV(data []byte, kind schema.Kind) (*LoadResult, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	mappings := schema.MapColumns(kind, headers)
	canonical := make(map[string]string, len(mappings)) // raw header → canonical field
	for _, m := range mappings {
		canonical[m.Original] = m.Suggested
	}

	// Bind each column to its target field name once, up front.
	targets := make([]string, len(headers))
	var unmapped []string
	for i, h := range headers {
		if field, ok := canonical[h]; ok {
			targets[i] = field
		} else {
			targets[i] = strings.TrimSpace(h)
			if targets[i] != "" {
				unmapped = append(unmapped, h)
			}
		}
	}

	var records []*engine.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		record := engine.NewRecord()
		for i, value := range row {
			if i >= len(targets) || targets[i] == "" {
				continue
			}
			record.Set(targets[i], value)
		}
		records = append(records, record)
	}

	return &LoadResult{
		Records:  records,
		Mappings: mappings,
		Unmapped: unmapped,
	}, nil
}
