package schema

// ============================================================================
// CANONICAL SCHEMAS — Clients, Workers, Tasks
// ============================================================================
// The three entity kinds and their canonical field lists. Field order is
// part of the contract: validators walk fields in declaration order, and
// issue ordering follows from it.
//
// Schemas are process-wide constants. Nothing mutates them after init.
// ============================================================================

// Kind identifies one of the three entity kinds.
type Kind string

const (
	Clients Kind = "clients"
	Workers Kind = "workers"
	Tasks   Kind = "tasks"
)

// FieldType is the semantic type of a canonical field.
type FieldType int

const (
	FieldIdentifier FieldType = iota // unique key, duplicate-checked
	FieldText                        // plain string
	FieldInteger                     // must parse as a number when present
	FieldList                        // comma-delimited values ("a,b,c")
	FieldFreeText                    // opaque payload, never validated
)

// FieldMeta describes one canonical field.
// HasRange marks a soft numeric bound; Max == 0 means unbounded above.
type FieldMeta struct {
	Name     string
	Type     FieldType
	Required bool
	HasRange bool
	Min      float64
	Max      float64
}

// EntitySchema is the fixed ordered field list for one entity kind.
type EntitySchema struct {
	Kind   Kind
	Fields []FieldMeta
}

// Canonical field names. Exported so callers never spell them ad hoc.
const (
	ClientID         = "ClientID"
	ClientName       = "ClientName"
	PriorityLevel    = "PriorityLevel"
	RequestedTaskIDs = "RequestedTaskIDs"
	GroupTag         = "GroupTag"
	AttributesJSON   = "AttributesJSON"

	WorkerID           = "WorkerID"
	WorkerName         = "WorkerName"
	Skills             = "Skills"
	AvailableSlots     = "AvailableSlots"
	MaxLoadPerPhase    = "MaxLoadPerPhase"
	WorkerGroup        = "WorkerGroup"
	QualificationLevel = "QualificationLevel"

	TaskID          = "TaskID"
	TaskName        = "TaskName"
	Category        = "Category"
	Duration        = "Duration"
	RequiredSkills  = "RequiredSkills"
	PreferredPhases = "PreferredPhases"
	MaxConcurrent   = "MaxConcurrent"
)

var ClientSchema = EntitySchema{
	Kind: Clients,
	Fields: []FieldMeta{
		{Name: ClientID, Type: FieldIdentifier, Required: true},
		{Name: ClientName, Type: FieldText, Required: true},
		{Name: PriorityLevel, Type: FieldInteger, Required: true, HasRange: true, Min: 1, Max: 10},
		{Name: RequestedTaskIDs, Type: FieldList},
		{Name: GroupTag, Type: FieldText},
		{Name: AttributesJSON, Type: FieldFreeText},
	},
}

var WorkerSchema = EntitySchema{
	Kind: Workers,
	Fields: []FieldMeta{
		{Name: WorkerID, Type: FieldIdentifier, Required: true},
		{Name: WorkerName, Type: FieldText, Required: true},
		{Name: Skills, Type: FieldList, Required: true},
		{Name: AvailableSlots, Type: FieldList},
		{Name: MaxLoadPerPhase, Type: FieldInteger},
		{Name: WorkerGroup, Type: FieldText},
		{Name: QualificationLevel, Type: FieldInteger, HasRange: true, Min: 1, Max: 10},
	},
}

var TaskSchema = EntitySchema{
	Kind: Tasks,
	Fields: []FieldMeta{
		{Name: TaskID, Type: FieldIdentifier, Required: true},
		{Name: TaskName, Type: FieldText, Required: true},
		{Name: Category, Type: FieldText},
		{Name: Duration, Type: FieldInteger, Required: true, HasRange: true, Min: 1},
		{Name: RequiredSkills, Type: FieldList},
		{Name: PreferredPhases, Type: FieldList},
		{Name: MaxConcurrent, Type: FieldInteger, HasRange: true, Min: 1},
	},
}

// ForKind returns the schema for an entity kind.
func ForKind(kind Kind) EntitySchema {
	switch kind {
	case Workers:
		return WorkerSchema
	case Tasks:
		return TaskSchema
	default:
		return ClientSchema
	}
}

// Identifier returns the identifier field for an entity kind.
func (s EntitySchema) Identifier() FieldMeta {
	for _, f := range s.Fields {
		if f.Type == FieldIdentifier {
			return f
		}
	}
	return s.Fields[0]
}

// Field looks up a field by canonical name.
func (s EntitySchema) Field(name string) (FieldMeta, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldMeta{}, false
}

// FieldNames returns the canonical field names in declaration order.
func (s EntitySchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}
