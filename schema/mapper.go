package schema

// ============================================================================
// COLUMN MAPPER — Fuzzy header reconciliation
// ============================================================================
// Proposes canonical-field renamings for arbitrary user headers. Pure
// function over header names; never looks at row data, so running it
// twice on the same headers yields the same mappings.
// ============================================================================

// mappingThreshold is the minimum similarity for a mapping to be emitted.
// Headers scoring at or below it are left to the caller as-is.
const mappingThreshold = 0.5

// ColumnMapping is a proposed rename of a raw header to a canonical field.
type ColumnMapping struct {
	Original   string  `json:"original"`
	Suggested  string  `json:"suggested"`
	Confidence float64 `json:"confidence"`
}

// MapColumns scores each raw header against every alias variant for the
// given kind and emits a mapping when the best score exceeds 0.5. Variants
// are tried in alias-table declaration order and ties keep the first
// variant seen. Headers below the threshold produce no mapping.
func MapColumns(kind Kind, rawHeaders []string) []ColumnMapping {
	aliases := aliasesFor(kind)

	var mappings []ColumnMapping
	for _, header := range rawHeaders {
		normalized := Normalize(header)
		if normalized == "" {
			continue
		}

		bestField := ""
		bestScore := 0.0
		for _, fa := range aliases {
			for _, variant := range fa.Variants {
				score := Similarity(normalized, Normalize(variant))
				if score > bestScore {
					bestScore = score
					bestField = fa.Field
				}
			}
		}

		if bestScore > mappingThreshold {
			mappings = append(mappings, ColumnMapping{
				Original:   header,
				Suggested:  bestField,
				Confidence: bestScore,
			})
		}
	}

	return mappings
}
