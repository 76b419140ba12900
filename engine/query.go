package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

// ============================================================================
// QUERY INTENT PARSER — Fixed pattern lists, first match wins
// ============================================================================
// Interpret recognizes a closed set of filter intents per entity kind by
// matching the query against an ordered matcher list. The ordering is a
// contract: two matchers can both apply to one query, and the earlier one
// always wins. When no matcher applies, the terminal state is a generic
// substring scan over every field value. Parsing never fails.
//
// A matched intent that selects zero records returns an empty result; it
// does not fall through to the generic scan.
// ============================================================================

// Intent is a recognized, parameterized query meaning. Constructed fresh
// per query; immutable.
type Intent interface {
	// Matches reports whether a record satisfies the intent.
	Matches(r *Record) bool
	// Describe returns a short human-readable summary for logs and CLI.
	Describe() string
}

// Interpret extracts an intent from a free-text query for one entity
// kind. Matchers run in fixed order; the generic substring search is the
// terminal fallback.
func Interpret(query string, kind schema.Kind) Intent {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, match := range matchersFor(kind) {
		if intent, ok := match(q); ok {
			return intent
		}
	}
	return FallbackSearch{Query: q}
}

// Apply filters records through an intent. Single pass, input untouched.
func Apply(intent Intent, records []*Record) []*Record {
	matched := make([]*Record, 0, len(records))
	for _, r := range records {
		if intent.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Filter is the one-call convenience wrapper around Interpret and Apply.
func Filter(query string, records []*Record, kind schema.Kind) []*Record {
	return Apply(Interpret(query, kind), records)
}

// ============================================================================
// INTENTS
// ============================================================================

// PriorityAtLeast keeps clients whose PriorityLevel parses and is at or
// above the threshold.
type PriorityAtLeast struct {
	Threshold float64
}

func (in PriorityAtLeast) Matches(r *Record) bool {
	meta, _ := schema.ClientSchema.Field(schema.PriorityLevel)
	v := Eval(r, meta)
	return v.Kind == ValueNumber && v.Number >= in.Threshold
}

func (in PriorityAtLeast) Describe() string {
	return fmt.Sprintf("priority >= %g", in.Threshold)
}

// FieldContains keeps records whose named field contains a substring,
// case-insensitively.
type FieldContains struct {
	Field     string
	Substring string
}

func (in FieldContains) Matches(r *Record) bool {
	raw, ok := r.Get(in.Field)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(raw), strings.ToLower(in.Substring))
}

func (in FieldContains) Describe() string {
	return fmt.Sprintf("%s contains %q", in.Field, in.Substring)
}

// ListIncludes keeps records where any candidate appears as a substring
// of the stored list representation. This is deliberately substring
// matching, not element or numeric-range evaluation: querying phase "2"
// against a stored range "1-3" is not guaranteed to match.
type ListIncludes struct {
	Field      string
	Candidates []string
}

func (in ListIncludes) Matches(r *Record) bool {
	raw, ok := r.Get(in.Field)
	if !ok {
		return false
	}
	stored := strings.ToLower(raw)
	for _, c := range in.Candidates {
		if c == "" {
			continue
		}
		if strings.Contains(stored, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

func (in ListIncludes) Describe() string {
	return fmt.Sprintf("%s includes any of %s", in.Field, strings.Join(in.Candidates, ", "))
}

// HasAnySlots keeps workers with at least one available slot.
type HasAnySlots struct{}

func (HasAnySlots) Matches(r *Record) bool {
	meta, _ := schema.WorkerSchema.Field(schema.AvailableSlots)
	v := Eval(r, meta)
	return v.Kind == ValueList && len(v.List) > 0
}

func (HasAnySlots) Describe() string { return "has any available slots" }

// NumberAtMost keeps records whose numeric field parses and is at or
// below the limit.
type NumberAtMost struct {
	Field string
	Limit float64
}

func (in NumberAtMost) Matches(r *Record) bool {
	v := evalNumeric(r, in.Field)
	return v.Kind == ValueNumber && v.Number <= in.Limit
}

func (in NumberAtMost) Describe() string {
	return fmt.Sprintf("%s <= %g", in.Field, in.Limit)
}

// NumberGreaterThan keeps records whose numeric field parses and is
// strictly above the threshold.
type NumberGreaterThan struct {
	Field     string
	Threshold float64
}

func (in NumberGreaterThan) Matches(r *Record) bool {
	v := evalNumeric(r, in.Field)
	return v.Kind == ValueNumber && v.Number > in.Threshold
}

func (in NumberGreaterThan) Describe() string {
	return fmt.Sprintf("%s > %g", in.Field, in.Threshold)
}

// FallbackSearch is the terminal intent: keep a record when any field
// value contains the lowercased query as a substring.
type FallbackSearch struct {
	Query string
}

func (in FallbackSearch) Matches(r *Record) bool {
	if in.Query == "" {
		return true
	}
	for _, field := range r.Fields() {
		raw, _ := r.Get(field)
		if strings.Contains(strings.ToLower(raw), in.Query) {
			return true
		}
	}
	return false
}

func (in FallbackSearch) Describe() string {
	return fmt.Sprintf("any field contains %q", in.Query)
}

// evalNumeric evaluates a field as numeric across all three schemas.
func evalNumeric(r *Record, field string) FieldValue {
	return Eval(r, schema.FieldMeta{Name: field, Type: schema.FieldInteger})
}

// ============================================================================
// MATCHER LISTS
// ============================================================================

// matcher tries to extract one intent kind from a lowercased query.
type matcher func(q string) (Intent, bool)

func matchersFor(kind schema.Kind) []matcher {
	switch kind {
	case schema.Workers:
		return workerMatchers
	case schema.Tasks:
		return taskMatchers
	default:
		return clientMatchers
	}
}

// defaultPriorityThreshold is used when a priority query names no number.
const defaultPriorityThreshold = 4

var clientMatchers = []matcher{
	func(q string) (Intent, bool) { // priority threshold
		if !strings.Contains(q, "priority") {
			return nil, false
		}
		n, ok := firstNumber(q)
		if !ok {
			n = defaultPriorityThreshold
		}
		return PriorityAtLeast{Threshold: n}, true
	},
	func(q string) (Intent, bool) { // name substring
		sub, ok := textAfter(q, "name")
		if !ok {
			return nil, false
		}
		return FieldContains{Field: schema.ClientName, Substring: sub}, true
	},
	func(q string) (Intent, bool) { // requested task ids
		ids, ok := listAfter(q, "task", "request")
		if !ok {
			return nil, false
		}
		return ListIncludes{Field: schema.RequestedTaskIDs, Candidates: ids}, true
	},
	func(q string) (Intent, bool) { // group tag substring
		sub, ok := textAfter(q, "group")
		if !ok {
			return nil, false
		}
		return FieldContains{Field: schema.GroupTag, Substring: sub}, true
	},
}

var workerMatchers = []matcher{
	func(q string) (Intent, bool) { // skill membership
		skills, ok := listAfter(q, "skill")
		if !ok {
			return nil, false
		}
		return ListIncludes{Field: schema.Skills, Candidates: skills}, true
	},
	func(q string) (Intent, bool) { // availability / phase membership
		if !strings.Contains(q, "slot") && !strings.Contains(q, "available") && !strings.Contains(q, "phase") {
			return nil, false
		}
		phases := phaseTokens(q)
		if len(phases) == 0 {
			return HasAnySlots{}, true
		}
		return ListIncludes{Field: schema.AvailableSlots, Candidates: phases}, true
	},
	func(q string) (Intent, bool) { // max load threshold
		if !strings.Contains(q, "load") {
			return nil, false
		}
		n, ok := firstNumber(q)
		if !ok {
			return nil, false
		}
		return NumberAtMost{Field: schema.MaxLoadPerPhase, Limit: n}, true
	},
	func(q string) (Intent, bool) { // worker group substring
		sub, ok := textAfter(q, "group")
		if !ok {
			return nil, false
		}
		return FieldContains{Field: schema.WorkerGroup, Substring: sub}, true
	},
}

var taskMatchers = []matcher{
	func(q string) (Intent, bool) { // duration greater-than
		if !strings.Contains(q, "duration") {
			return nil, false
		}
		n, ok := firstNumber(q)
		if !ok {
			return nil, false
		}
		return NumberGreaterThan{Field: schema.Duration, Threshold: n}, true
	},
	func(q string) (Intent, bool) { // phase membership
		if !strings.Contains(q, "phase") {
			return nil, false
		}
		phases := phaseTokens(q)
		if len(phases) == 0 {
			return nil, false
		}
		return ListIncludes{Field: schema.PreferredPhases, Candidates: phases}, true
	},
	func(q string) (Intent, bool) { // required skill membership
		skills, ok := listAfter(q, "skill")
		if !ok {
			return nil, false
		}
		return ListIncludes{Field: schema.RequiredSkills, Candidates: skills}, true
	},
	func(q string) (Intent, bool) { // max concurrent threshold
		if !strings.Contains(q, "concurrent") {
			return nil, false
		}
		n, ok := firstNumber(q)
		if !ok {
			return nil, false
		}
		return NumberAtMost{Field: schema.MaxConcurrent, Limit: n}, true
	},
}

// ============================================================================
// EXTRACTION HELPERS
// ============================================================================

var (
	numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	// Single phase numbers and ranges like "1-3", kept as raw tokens.
	phaseTokenRe = regexp.MustCompile(`\d+\s*-\s*\d+|\d+`)
)

// Filler tokens stripped from the front of extracted parameters, so
// "skills include welding" and "skills: welding" extract the same list.
var fillerTokens = map[string]bool{
	"is": true, "are": true, "in": true, "of": true, "the": true,
	"contains": true, "contain": true, "containing": true,
	"includes": true, "include": true, "including": true,
	"with": true, "has": true, "have": true, "having": true,
	"ids": true, "id": true, "tag": true, "level": true, "levels": true,
	"s": true, "es": true,
}

// firstNumber returns the first number in the query, if any.
func firstNumber(q string) (float64, bool) {
	m := numberRe.FindString(q)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// phaseTokens extracts phase numbers and raw range tokens like "1-3".
func phaseTokens(q string) []string {
	var tokens []string
	for _, m := range phaseTokenRe.FindAllString(q, -1) {
		tokens = append(tokens, strings.ReplaceAll(m, " ", ""))
	}
	return tokens
}

// textAfter extracts the free text after the first occurrence of a
// keyword, with leading filler and punctuation stripped. Returns false
// when the keyword is absent or nothing follows it.
func textAfter(q string, keyword string) (string, bool) {
	idx := strings.Index(q, keyword)
	if idx < 0 {
		return "", false
	}
	rest := q[idx+len(keyword):]
	rest = stripFiller(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}

// listAfter extracts a comma-separated candidate list following the
// first keyword found.
func listAfter(q string, keywords ...string) ([]string, bool) {
	for _, kw := range keywords {
		rest, ok := textAfter(q, kw)
		if !ok {
			continue
		}
		var items []string
		for _, part := range strings.Split(rest, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				items = append(items, part)
			}
		}
		if len(items) > 0 {
			return items, true
		}
	}
	return nil, false
}

// stripFiller removes leading filler tokens, separators, and quotes.
func stripFiller(s string) string {
	s = strings.TrimSpace(s)
	for {
		s = strings.TrimLeft(s, ":=\"' ")
		word := s
		if sp := strings.IndexByte(s, ' '); sp >= 0 {
			word = s[:sp]
		}
		if word == "" || !fillerTokens[word] {
			break
		}
		s = strings.TrimSpace(s[len(word):])
	}
	return strings.Trim(s, "\"' ")
}
