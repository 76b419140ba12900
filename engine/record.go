package engine

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

// ============================================================================
// RECORD — Ordered field/value row
// ============================================================================
// A Record is one data row: an ordered mapping from field name to a raw
// string value. Values stay raw strings; typed access goes through Eval,
// which interprets a value against the field's schema metadata and
// reports missing/malformed outcomes instead of panicking or guessing.
//
// Records are read-only inputs to validation and querying. Cell edits
// happen upstream and re-enter as new Records.
// ============================================================================

// Record is a single row. Field order is preserved from construction.
type Record struct {
	fields []string
	values map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// RecordFromPairs builds a record from alternating field, value strings.
// Convenience for tests and ad-hoc construction.
func RecordFromPairs(pairs ...string) *Record {
	r := NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Set stores a value. First Set of a field fixes its position in the
// field order; later Sets overwrite in place.
func (r *Record) Set(field, value string) {
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

// Get returns the raw value and whether the field is present.
func (r *Record) Get(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	return r.fields
}

// MarshalJSON renders the record as a JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, field := range r.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[field])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// ============================================================================
// TYPED ACCESS — Schema-driven field evaluation
// ============================================================================

// ValueKind tags the outcome of evaluating a field against its schema.
type ValueKind int

const (
	ValueMissing   ValueKind = iota // absent or whitespace-only
	ValueText                       // plain string
	ValueNumber                     // parsed numeric
	ValueList                       // parsed delimited list
	ValueMalformed                  // present but failed to parse for its type
)

// FieldValue is the tagged result of a typed field read. Exactly one of
// Number/List is meaningful, per Kind; Text always carries the trimmed
// raw value.
type FieldValue struct {
	Kind   ValueKind
	Text   string
	Number float64
	List   []string
}

// Eval reads a record field through its schema metadata. Absent and
// whitespace-only values evaluate to ValueMissing regardless of type.
func Eval(r *Record, meta schema.FieldMeta) FieldValue {
	raw, ok := r.Get(meta.Name)
	trimmed := strings.TrimSpace(raw)
	if !ok || trimmed == "" {
		return FieldValue{Kind: ValueMissing}
	}

	switch meta.Type {
	case schema.FieldInteger:
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return FieldValue{Kind: ValueMalformed, Text: trimmed}
		}
		return FieldValue{Kind: ValueNumber, Text: trimmed, Number: n}

	case schema.FieldList:
		return FieldValue{Kind: ValueList, Text: trimmed, List: SplitList(trimmed)}

	default:
		return FieldValue{Kind: ValueText, Text: trimmed}
	}
}

// SplitList splits a delimited-list value ("a, b,c" or "[1,2,3]") into
// trimmed elements, dropping empties. Range syntax like "1-3" is kept as
// a single element; callers that care about phases match it as raw text.
func SplitList(raw string) []string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var items []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
