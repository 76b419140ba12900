// Package configurator turns messy client/worker/task spreadsheets into
// validated, queryable allocation data.
//
// Usage:
//
//	import "github.com/Poseidon-99/ai-resource-configurator/engine"
//
//	report := engine.ValidateClients(records,
//	    engine.WithAllowedValues(schema.RequestedTaskIDs, taskIDs),
//	)
//
//	matched := engine.Filter("priority 5 clients", records, schema.Clients)
//
// The schema package reconciles arbitrary CSV headers against the
// canonical field names; the engine validates rows, answers plain-text
// filter queries, and suggests allocation rules — all fully offline.
//
// AI questions are handled separately by the insight package. It is the
// only component that calls an external service, and its failures are
// always classified into user-facing categories before display.
package configurator
