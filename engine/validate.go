package engine

import (
	"fmt"
	"strings"

	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

// ============================================================================
// VALIDATION ENGINE — Per-entity rule checklists
// ============================================================================
// One entry point per entity kind. Each row runs the full checklist:
//
//   1. required fields      → error when absent or blank after trim
//   2. numeric type         → error when a non-empty value fails to parse
//   3. numeric range        → warning when outside the soft bound
//   4. duplicate identifier → error on every repeat of an earlier id
//   5. reference            → error when a value is outside an allowed set
//
// Issues are collected, never thrown; a row that fails one check still
// contributes to every other check. Ordering: rows in input order, checks
// in checklist order, fields in schema declaration order.
// ============================================================================

// Option adjusts a validation run.
type Option func(*validateOptions)

type validateOptions struct {
	// allowed maps a list- or text-typed field to its reference set.
	allowed map[string][]string
}

// WithAllowedValues enables the reference check for a field: every value
// (every element, for list fields) must belong to the given set.
// Typical use: client RequestedTaskIDs against known task ids, task
// RequiredSkills against the observed worker skill pool.
func WithAllowedValues(field string, values []string) Option {
	return func(o *validateOptions) {
		if o.allowed == nil {
			o.allowed = make(map[string][]string)
		}
		o.allowed[field] = values
	}
}

// ValidateClients validates client records.
func ValidateClients(records []*Record, opts ...Option) Report {
	return validateKind(schema.ClientSchema, records, opts...)
}

// ValidateWorkers validates worker records.
func ValidateWorkers(records []*Record, opts ...Option) Report {
	return validateKind(schema.WorkerSchema, records, opts...)
}

// ValidateTasks validates task records.
func ValidateTasks(records []*Record, opts ...Option) Report {
	return validateKind(schema.TaskSchema, records, opts...)
}

// Validate dispatches to the entity-specific validator.
func Validate(kind schema.Kind, records []*Record, opts ...Option) Report {
	return validateKind(schema.ForKind(kind), records, opts...)
}

func validateKind(sch schema.EntitySchema, records []*Record, opts ...Option) Report {
	var options validateOptions
	for _, opt := range opts {
		opt(&options)
	}

	var issues []Issue
	idField := sch.Identifier()
	seenIDs := make(map[string]int) // normalized id → first row index

	for row, record := range records {
		// 1. Required fields.
		for _, meta := range sch.Fields {
			if !meta.Required {
				continue
			}
			if Eval(record, meta).Kind == ValueMissing {
				issues = append(issues, Issue{
					Row:      row,
					Column:   meta.Name,
					Message:  fmt.Sprintf("%s is required", meta.Name),
					Severity: SeverityError,
				})
			}
		}

		// 2. Numeric type. Empty values are the required check's problem,
		// not a type failure.
		for _, meta := range sch.Fields {
			if meta.Type != schema.FieldInteger {
				continue
			}
			v := Eval(record, meta)
			if v.Kind == ValueMalformed {
				issues = append(issues, Issue{
					Row:      row,
					Column:   meta.Name,
					Message:  fmt.Sprintf("%s must be a number, got %q", meta.Name, v.Text),
					Severity: SeverityError,
				})
			}
		}

		// 3. Numeric range. Unparsable values were already reported above,
		// so only successfully parsed numbers are bounded here.
		for _, meta := range sch.Fields {
			if !meta.HasRange {
				continue
			}
			v := Eval(record, meta)
			if v.Kind != ValueNumber {
				continue
			}
			if v.Number < meta.Min || (meta.Max > 0 && v.Number > meta.Max) {
				issues = append(issues, Issue{
					Row:        row,
					Column:     meta.Name,
					Message:    fmt.Sprintf("%s %s is outside %s", meta.Name, v.Text, rangeLabel(meta)),
					Severity:   SeverityWarning,
					Suggestion: fmt.Sprintf("Use a value %s", rangeLabel(meta)),
				})
			}
		}

		// 4. Duplicate identifier. Case-insensitive, trimmed; blank ids are
		// skipped (the required check covers them); first occurrence is
		// never flagged.
		if raw, ok := record.Get(idField.Name); ok {
			id := strings.ToLower(strings.TrimSpace(raw))
			if id != "" {
				if first, dup := seenIDs[id]; dup {
					issues = append(issues, Issue{
						Row:      row,
						Column:   idField.Name,
						Message:  fmt.Sprintf("duplicate %s %q (first seen at row %d)", idField.Name, strings.TrimSpace(raw), first),
						Severity: SeverityError,
					})
				} else {
					seenIDs[id] = row
				}
			}
		}

		// 5. Reference sets.
		for _, meta := range sch.Fields {
			allowed, ok := options.allowed[meta.Name]
			if !ok {
				continue
			}
			issues = append(issues, checkReference(row, record, meta, allowed)...)
		}
	}

	return buildReport(issues, len(records))
}

// checkReference verifies field values against an allowed set. List
// fields are checked element by element. Matching is exact after trim.
func checkReference(row int, record *Record, meta schema.FieldMeta, allowed []string) []Issue {
	v := Eval(record, meta)
	if v.Kind == ValueMissing {
		return nil
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		allowedSet[strings.TrimSpace(a)] = true
	}

	candidates := v.List
	if v.Kind != ValueList {
		candidates = []string{v.Text}
	}

	var issues []Issue
	for _, c := range candidates {
		if allowedSet[c] {
			continue
		}
		issues = append(issues, Issue{
			Row:        row,
			Column:     meta.Name,
			Message:    fmt.Sprintf("unknown %s value %q", meta.Name, c),
			Severity:   SeverityError,
			Suggestion: allowedHint(allowed),
		})
	}
	return issues
}

// allowedHint lists up to three allowed values, with an ellipsis when the
// set is larger.
func allowedHint(allowed []string) string {
	if len(allowed) == 0 {
		return ""
	}
	shown := allowed
	suffix := ""
	if len(shown) > 3 {
		shown = shown[:3]
		suffix = ", ..."
	}
	return "Allowed values: " + strings.Join(shown, ", ") + suffix
}

func rangeLabel(meta schema.FieldMeta) string {
	if meta.Max > 0 {
		return fmt.Sprintf("[%g..%g]", meta.Min, meta.Max)
	}
	return fmt.Sprintf(">= %g", meta.Min)
}
