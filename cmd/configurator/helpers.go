package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Poseidon-99/ai-resource-configurator/engine"
	"github.com/Poseidon-99/ai-resource-configurator/helpers"
	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

// parseKind converts a CLI argument to an entity kind.
func parseKind(s string) (schema.Kind, error) {
	switch s {
	case "clients", "client":
		return schema.Clients, nil
	case "workers", "worker":
		return schema.Workers, nil
	case "tasks", "task":
		return schema.Tasks, nil
	default:
		return "", fmt.Errorf("unknown entity kind %q (want clients, workers, or tasks)", s)
	}
}

// loadFile parses one entity CSV from disk.
func loadFile(path string, kind schema.Kind) (*helpers.LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	result, err := helpers.ParseCSV(data, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return result, nil
}

// entityFiles is the shared --clients/--workers/--tasks flag set.
type entityFiles struct {
	clients string
	workers string
	tasks   string
}

// loadAll parses whichever entity files were given. Absent paths load as
// empty record sets.
func (ef entityFiles) loadAll() (clients, workers, tasks []*engine.Record, err error) {
	if ef.clients != "" {
		r, err := loadFile(ef.clients, schema.Clients)
		if err != nil {
			return nil, nil, nil, err
		}
		clients = r.Records
	}
	if ef.workers != "" {
		r, err := loadFile(ef.workers, schema.Workers)
		if err != nil {
			return nil, nil, nil, err
		}
		workers = r.Records
	}
	if ef.tasks != "" {
		r, err := loadFile(ef.tasks, schema.Tasks)
		if err != nil {
			return nil, nil, nil, err
		}
		tasks = r.Records
	}
	return clients, workers, tasks, nil
}

// identifierValues collects the non-empty identifier values of a record
// set, for cross-entity reference checks.
func identifierValues(records []*engine.Record, field string) []string {
	var values []string
	for _, r := range records {
		if v, ok := r.Get(field); ok && v != "" {
			values = append(values, v)
		}
	}
	return values
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
