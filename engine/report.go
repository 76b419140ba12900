package engine

// ============================================================================
// VALIDATION REPORT — Issues, severities, summary
// ============================================================================

// Severity splits issues into validity-blocking errors and advisory
// warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding. Immutable once created; the sequence
// of issues for a run is ordered by the order rows and fields were
// checked.
type Issue struct {
	Row        int      `json:"row"`
	Column     string   `json:"column"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Summary holds the issue counts for a run.
type Summary struct {
	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
	RowCount     int `json:"rowCount"`
}

// Report is the outcome of one validation run. Valid holds exactly when
// Errors is empty; Summary counts always equal the sequence lengths.
// Both are derived from the issue sequence, never set independently.
type Report struct {
	Valid    bool    `json:"isValid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Summary  Summary `json:"summary"`
}

// buildReport partitions issues into errors and warnings, preserving
// discovery order, and derives the summary.
func buildReport(issues []Issue, rowCount int) Report {
	report := Report{
		Errors:   make([]Issue, 0, len(issues)),
		Warnings: make([]Issue, 0),
	}
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			report.Errors = append(report.Errors, issue)
		} else {
			report.Warnings = append(report.Warnings, issue)
		}
	}
	report.Summary = Summary{
		ErrorCount:   len(report.Errors),
		WarningCount: len(report.Warnings),
		RowCount:     rowCount,
	}
	report.Valid = report.Summary.ErrorCount == 0
	return report
}
