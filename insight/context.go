package insight

import (
	"fmt"
	"strings"

	"github.com/Poseidon-99/ai-resource-configurator/engine"
	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

// maxListedRows caps how many rows of each entity go into the prompt.
// Enough for the service to see the shape of the data without shipping
// whole datasets.
const maxListedRows = 30

// BuildDataContext formats the three record sets as compact text listings
// for the reasoning service.
func BuildDataContext(clients, workers, tasks []*engine.Record) string {
	var b strings.Builder
	writeEntityListing(&b, "CLIENTS", schema.ClientSchema, clients)
	writeEntityListing(&b, "WORKERS", schema.WorkerSchema, workers)
	writeEntityListing(&b, "TASKS", schema.TaskSchema, tasks)
	return strings.TrimRight(b.String(), "\n")
}

func writeEntityListing(b *strings.Builder, title string, sch schema.EntitySchema, records []*engine.Record) {
	fmt.Fprintf(b, "%s (%d total):\n", title, len(records))

	listed := records
	if len(listed) > maxListedRows {
		listed = listed[:maxListedRows]
	}
	for _, r := range listed {
		var parts []string
		for _, meta := range sch.Fields {
			raw, ok := r.Get(meta.Name)
			raw = strings.TrimSpace(raw)
			if !ok || raw == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s=%s", meta.Name, raw))
		}
		fmt.Fprintf(b, "  - %s\n", strings.Join(parts, ", "))
	}
	if len(records) > maxListedRows {
		fmt.Fprintf(b, "  ... and %d more\n", len(records)-maxListedRows)
	}
	b.WriteString("\n")
}
