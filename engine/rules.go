package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

// ============================================================================
// RULE & INSIGHT HEURISTICS — Fixed-threshold aggregate scans
// ============================================================================
// Deterministic suggestions from aggregate statistics of the loaded data.
// Nothing here learns: every threshold and confidence is a constant.
// ============================================================================

// Heuristic thresholds.
const (
	highPriorityLevel    = 4   // clients at or above this count as high priority
	priorityRatioTrigger = 0.3 // fraction of high-priority clients that triggers the suggestion
	slotPressureCeiling  = 20  // mean slots per worker below this signals load pressure
)

// SuggestRules scans the three record sets and returns allocation-rule
// suggestions. Order is fixed: priority, load balance, group allocation,
// skill coverage.
func SuggestRules(clients, workers, tasks []*Record) []string {
	var suggestions []string

	// Priority concentration: many high-priority clients compete for the
	// same early slots.
	if len(clients) > 0 {
		high := 0
		meta, _ := schema.ClientSchema.Field(schema.PriorityLevel)
		for _, c := range clients {
			v := Eval(c, meta)
			if v.Kind == ValueNumber && v.Number >= highPriorityLevel {
				high++
			}
		}
		ratio := float64(high) / float64(len(clients))
		if ratio > priorityRatioTrigger {
			suggestions = append(suggestions, fmt.Sprintf(
				"%.0f%% of clients are high priority (level >= %d). Consider a priority-first allocation rule so they are scheduled before lower-priority requests.",
				ratio*100, highPriorityLevel))
		}
	}

	// Slot pressure: low mean availability means phases will saturate.
	if len(workers) > 0 {
		meta, _ := schema.WorkerSchema.Field(schema.AvailableSlots)
		totalSlots := 0
		for _, w := range workers {
			v := Eval(w, meta)
			if v.Kind == ValueList {
				totalSlots += len(v.List)
			}
		}
		mean := float64(totalSlots) / float64(len(workers))
		if mean > 0 && mean < slotPressureCeiling {
			suggestions = append(suggestions, fmt.Sprintf(
				"Workers average %.1f available slots each. Consider a load-balancing rule to cap per-phase assignments.",
				mean))
		}
	}

	// Group spread: multiple worker groups invite group-scoped allocation.
	groups := distinctValues(workers, schema.WorkerGroup)
	if len(groups) > 1 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Workers span %d groups (%s). Consider a group-allocation rule to keep related tasks within one group.",
			len(groups), strings.Join(groups, ", ")))
	}

	// Skill coverage: tasks requiring skills no worker has can never be
	// assigned.
	if missing := uncoveredSkills(workers, tasks); len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"No worker covers required skill(s): %s. Add workers with these skills or relax the task requirements.",
			strings.Join(missing, ", ")))
	}

	return suggestions
}

// distinctValues collects the distinct non-empty values of a field,
// sorted for deterministic output.
func distinctValues(records []*Record, field string) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		raw, _ := r.Get(field)
		v := strings.TrimSpace(raw)
		if v != "" && !seen[v] {
			seen[v] = true
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// uncoveredSkills returns required task skills that no worker offers.
// Comparison is case-insensitive on trimmed values.
func uncoveredSkills(workers, tasks []*Record) []string {
	offered := make(map[string]bool)
	wMeta, _ := schema.WorkerSchema.Field(schema.Skills)
	for _, w := range workers {
		v := Eval(w, wMeta)
		for _, s := range v.List {
			offered[strings.ToLower(s)] = true
		}
	}

	missingSet := make(map[string]bool)
	var missing []string
	tMeta, _ := schema.TaskSchema.Field(schema.RequiredSkills)
	for _, t := range tasks {
		v := Eval(t, tMeta)
		for _, s := range v.List {
			key := strings.ToLower(s)
			if !offered[key] && !missingSet[key] {
				missingSet[key] = true
				missing = append(missing, s)
			}
		}
	}
	sort.Strings(missing)
	return missing
}

// ============================================================================
// DATA QUALITY SUGGESTIONS
// ============================================================================

// Fixed confidence per quality check. Not learned, not tunable.
const (
	confidenceDuplicateID  = 1.0
	confidenceBadNumeric   = 0.9
	confidenceMissingValue = 0.85
	confidenceListSpacing  = 0.7
)

// QualityFinding is one data-quality observation with a suggested remedy.
type QualityFinding struct {
	Issue            string  `json:"issue"`
	Suggestion       string  `json:"suggestion"`
	AutoFixAvailable bool    `json:"autoFixAvailable"`
	Confidence       float64 `json:"confidence"`
}

// SuggestDataQuality scans one entity's records for recurring quality
// problems: duplicate identifiers, unparsable numerics, missing required
// values, and sloppy list spacing. One finding per field/problem pair,
// not per row.
func SuggestDataQuality(records []*Record, kind schema.Kind) []QualityFinding {
	sch := schema.ForKind(kind)
	var findings []QualityFinding

	// Duplicate identifiers.
	idField := sch.Identifier()
	seen := make(map[string]bool)
	dups := 0
	for _, r := range records {
		raw, _ := r.Get(idField.Name)
		id := strings.ToLower(strings.TrimSpace(raw))
		if id == "" {
			continue
		}
		if seen[id] {
			dups++
		}
		seen[id] = true
	}
	if dups > 0 {
		findings = append(findings, QualityFinding{
			Issue:            fmt.Sprintf("%d duplicate %s value(s)", dups, idField.Name),
			Suggestion:       fmt.Sprintf("Deduplicate %s before allocation; duplicates make references ambiguous.", idField.Name),
			AutoFixAvailable: false,
			Confidence:       confidenceDuplicateID,
		})
	}

	for _, meta := range sch.Fields {
		switch meta.Type {
		case schema.FieldInteger:
			bad := 0
			for _, r := range records {
				if Eval(r, meta).Kind == ValueMalformed {
					bad++
				}
			}
			if bad > 0 {
				findings = append(findings, QualityFinding{
					Issue:            fmt.Sprintf("%s has %d non-numeric value(s)", meta.Name, bad),
					Suggestion:       fmt.Sprintf("Replace non-numeric %s values with numbers.", meta.Name),
					AutoFixAvailable: false,
					Confidence:       confidenceBadNumeric,
				})
			}

		case schema.FieldList:
			sloppy := 0
			for _, r := range records {
				raw, ok := r.Get(meta.Name)
				if ok && strings.Contains(raw, ", ") {
					sloppy++
				}
			}
			if sloppy > 0 {
				findings = append(findings, QualityFinding{
					Issue:            fmt.Sprintf("%s has %d value(s) with spaces after commas", meta.Name, sloppy),
					Suggestion:       fmt.Sprintf("Normalize %s to comma-separated values without padding.", meta.Name),
					AutoFixAvailable: true,
					Confidence:       confidenceListSpacing,
				})
			}
		}

		if meta.Required {
			missing := 0
			for _, r := range records {
				if Eval(r, meta).Kind == ValueMissing {
					missing++
				}
			}
			if missing > 0 {
				findings = append(findings, QualityFinding{
					Issue:            fmt.Sprintf("%s is empty in %d row(s)", meta.Name, missing),
					Suggestion:       fmt.Sprintf("Fill in %s; it is required for allocation.", meta.Name),
					AutoFixAvailable: false,
					Confidence:       confidenceMissingValue,
				})
			}
		}
	}

	return findings
}

// ============================================================================
// NATURAL LANGUAGE → RULE DRAFT
// ============================================================================

// Rule template types. Closed set; NaturalLanguageToRule never invents a
// fifth.
const (
	RulePriorityFirst   = "priority-first"
	RuleLoadBalance     = "load-balance"
	RuleSkillMatch      = "skill-match"
	RuleGroupAllocation = "group-allocation"
	RuleManualReview    = "manual-review"
)

// RuleDraft is a canned rule template selected from a free-text
// description.
type RuleDraft struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NaturalLanguageToRule maps a description onto one of four rule
// templates by keyword presence, checked in fixed order. Anything else
// gets the manual-review template. This is a closed classifier, not
// generation.
func NaturalLanguageToRule(description string) RuleDraft {
	d := strings.ToLower(description)

	switch {
	case containsAny(d, "priorit", "urgent", "important", "vip"):
		return RuleDraft{
			Type:        RulePriorityFirst,
			Name:        "Priority First",
			Description: "Allocate high-priority clients before lower-priority ones.",
		}
	case containsAny(d, "load", "balance", "capacity", "overload"):
		return RuleDraft{
			Type:        RuleLoadBalance,
			Name:        "Load Balance",
			Description: "Spread assignments so no worker exceeds the per-phase load limit.",
		}
	case containsAny(d, "skill", "qualif", "expert"):
		return RuleDraft{
			Type:        RuleSkillMatch,
			Name:        "Skill Match",
			Description: "Assign tasks only to workers whose skills cover the requirements.",
		}
	case containsAny(d, "group", "team", "together", "cohort"):
		return RuleDraft{
			Type:        RuleGroupAllocation,
			Name:        "Group Allocation",
			Description: "Keep allocations within matching client and worker groups.",
		}
	default:
		return RuleDraft{
			Type:        RuleManualReview,
			Name:        "Manual Review",
			Description: "Could not classify the description; review and pick a template manually.",
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
