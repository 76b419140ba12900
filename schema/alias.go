package schema

// ============================================================================
// ALIAS TABLES — Known spellings per canonical field
// ============================================================================
// Each canonical field lists the header spellings seen in the wild. The
// mapper compares normalized headers against every variant and keeps the
// best score. Declaration order is the tie-break order: when two variants
// score the same, the earlier one wins. That makes mapping deterministic,
// so the order below is a contract, not cosmetics.
// ============================================================================

// fieldAliases pairs a canonical field with its known spelling variants.
// The canonical name itself is always the first variant.
type fieldAliases struct {
	Field    string
	Variants []string
}

var clientAliases = []fieldAliases{
	{ClientID, []string{"ClientID", "client_id", "client id", "clientidentifier", "customer_id", "id"}},
	{ClientName, []string{"ClientName", "client_name", "client", "customer_name", "customer", "name"}},
	{PriorityLevel, []string{"PriorityLevel", "priority_level", "priority", "prio", "importance", "urgency"}},
	{RequestedTaskIDs, []string{"RequestedTaskIDs", "requested_task_ids", "requested_tasks", "task_ids", "tasks_requested", "requests"}},
	{GroupTag, []string{"GroupTag", "group_tag", "client_group", "group", "segment"}},
	{AttributesJSON, []string{"AttributesJSON", "attributes_json", "attributes", "attrs", "metadata"}},
}

var workerAliases = []fieldAliases{
	{WorkerID, []string{"WorkerID", "worker_id", "worker id", "employee_id", "id"}},
	{WorkerName, []string{"WorkerName", "worker_name", "worker", "employee_name", "name"}},
	{Skills, []string{"Skills", "skill_set", "skillset", "skill", "capabilities"}},
	{AvailableSlots, []string{"AvailableSlots", "available_slots", "availability", "available_phases", "slots"}},
	{MaxLoadPerPhase, []string{"MaxLoadPerPhase", "max_load_per_phase", "max_load", "load_limit", "capacity"}},
	{WorkerGroup, []string{"WorkerGroup", "worker_group", "team", "crew"}},
	{QualificationLevel, []string{"QualificationLevel", "qualification_level", "qualification", "seniority", "grade"}},
}

var taskAliases = []fieldAliases{
	{TaskID, []string{"TaskID", "task_id", "task id", "id"}},
	{TaskName, []string{"TaskName", "task_name", "task", "title", "name"}},
	{Category, []string{"Category", "task_category", "task_type", "type"}},
	{Duration, []string{"Duration", "duration_phases", "phases_required", "length"}},
	{RequiredSkills, []string{"RequiredSkills", "required_skills", "skills_required", "skills_needed", "skills"}},
	{PreferredPhases, []string{"PreferredPhases", "preferred_phases", "phase_window", "phases"}},
	{MaxConcurrent, []string{"MaxConcurrent", "max_concurrent", "max_parallel", "concurrency"}},
}

// aliasesFor returns the alias table for an entity kind.
func aliasesFor(kind Kind) []fieldAliases {
	switch kind {
	case Workers:
		return workerAliases
	case Tasks:
		return taskAliases
	default:
		return clientAliases
	}
}
