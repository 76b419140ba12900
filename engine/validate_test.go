package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Poseidon-99/ai-resource-configurator/schema"
)

// client builds a structurally valid client record.
func client(id, name, priority string) *Record {
	return RecordFromPairs(
		schema.ClientID, id,
		schema.ClientName, name,
		schema.PriorityLevel, priority,
	)
}

func TestReportInvariants(t *testing.T) {
	records := []*Record{
		client("C1", "Acme", "3"),
		client("C2", "", "12"),    // missing name (error) + out of range (warning)
		client("c1", "Dup", "xx"), // duplicate id + bad numeric
	}
	report := ValidateClients(records)

	assert.Equal(t, len(report.Errors), report.Summary.ErrorCount)
	assert.Equal(t, len(report.Warnings), report.Summary.WarningCount)
	assert.Equal(t, report.Summary.ErrorCount == 0, report.Valid)
	assert.False(t, report.Valid)
	assert.Equal(t, 3, report.Summary.RowCount)
}

func TestReportValidWhenClean(t *testing.T) {
	report := ValidateClients([]*Record{
		client("C1", "Acme", "3"),
		client("C2", "Globex", "7"),
	})
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestDuplicateIdentifiersCaseInsensitive(t *testing.T) {
	records := []*Record{
		client("A", "One", "1"),
		client("a", "Two", "2"),
		client("B", "Three", "3"),
		client("A", "Four", "4"),
	}
	report := ValidateClients(records)

	require.Len(t, report.Errors, 2)
	assert.Equal(t, 1, report.Errors[0].Row)
	assert.Equal(t, 3, report.Errors[1].Row)
	for _, issue := range report.Errors {
		assert.Equal(t, schema.ClientID, issue.Column)
		assert.Contains(t, issue.Message, "duplicate")
	}
}

func TestDuplicateCheckIgnoresBlankIDs(t *testing.T) {
	records := []*Record{
		client("", "One", "1"),
		client("  ", "Two", "2"),
	}
	report := ValidateClients(records)
	for _, issue := range report.Errors {
		assert.NotContains(t, issue.Message, "duplicate")
	}
}

func TestRequiredFieldMissing(t *testing.T) {
	rec := RecordFromPairs(
		schema.ClientID, "C1",
		schema.PriorityLevel, "3",
	)
	report := ValidateClients([]*Record{rec})

	require.Len(t, report.Errors, 1)
	assert.Equal(t, schema.ClientName, report.Errors[0].Column)
	assert.Contains(t, report.Errors[0].Message, "is required")
	assert.Equal(t, 0, report.Errors[0].Row)
}

func TestTypeErrorSuppressesRangeWarning(t *testing.T) {
	report := ValidateClients([]*Record{client("C1", "Acme", "abc")})

	require.Len(t, report.Errors, 1)
	assert.Equal(t, schema.PriorityLevel, report.Errors[0].Column)
	assert.Contains(t, report.Errors[0].Message, "must be a number")
	assert.Empty(t, report.Warnings, "unparsable value must not also trigger a range warning")
}

func TestRangeWarningIsNotAnError(t *testing.T) {
	report := ValidateClients([]*Record{client("C1", "Acme", "12")})

	assert.Empty(t, report.Errors)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, schema.PriorityLevel, report.Warnings[0].Column)
	assert.Equal(t, SeverityWarning, report.Warnings[0].Severity)
	assert.True(t, report.Valid, "warnings alone must not invalidate the report")
}

func TestRowNotShortCircuited(t *testing.T) {
	// A row missing its name still participates in duplicate and range
	// checks.
	records := []*Record{
		client("C1", "Acme", "3"),
		RecordFromPairs(schema.ClientID, "c1", schema.PriorityLevel, "12"),
	}
	report := ValidateClients(records)

	columns := make([]string, 0, len(report.Errors))
	for _, e := range report.Errors {
		columns = append(columns, e.Column)
	}
	assert.Contains(t, columns, schema.ClientName)
	assert.Contains(t, columns, schema.ClientID) // the duplicate
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, schema.PriorityLevel, report.Warnings[0].Column)
}

func TestReferenceCheck(t *testing.T) {
	rec := client("C1", "Acme", "3")
	rec.Set(schema.RequestedTaskIDs, "T1,T9")

	report := ValidateClients([]*Record{rec},
		WithAllowedValues(schema.RequestedTaskIDs, []string{"T1", "T2", "T3", "T4"}))

	require.Len(t, report.Errors, 1)
	issue := report.Errors[0]
	assert.Equal(t, schema.RequestedTaskIDs, issue.Column)
	assert.Contains(t, issue.Message, `"T9"`)
	assert.Equal(t, "Allowed values: T1, T2, T3, ...", issue.Suggestion)
}

func TestReferenceCheckSmallSetNoEllipsis(t *testing.T) {
	rec := client("C1", "Acme", "3")
	rec.Set(schema.GroupTag, "gold")

	report := ValidateClients([]*Record{rec},
		WithAllowedValues(schema.GroupTag, []string{"alpha", "beta"}))

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Allowed values: alpha, beta", report.Errors[0].Suggestion)
	assert.False(t, strings.Contains(report.Errors[0].Suggestion, "..."))
}

func TestValidateWorkersRequired(t *testing.T) {
	rec := RecordFromPairs(schema.WorkerID, "W1", schema.WorkerName, "Ann")
	report := ValidateWorkers([]*Record{rec})

	require.Len(t, report.Errors, 1)
	assert.Equal(t, schema.Skills, report.Errors[0].Column)
}

func TestValidateTasksDurationRange(t *testing.T) {
	rec := RecordFromPairs(
		schema.TaskID, "T1",
		schema.TaskName, "Weld",
		schema.Duration, "0",
	)
	report := ValidateTasks([]*Record{rec})

	assert.Empty(t, report.Errors)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, schema.Duration, report.Warnings[0].Column)
}
